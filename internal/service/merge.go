package service

import (
	"sort"

	"github.com/PlatONnetwork/wallet-core/internal/model"
)

// MergeOperations merges freshly fetched operations into an existing
// history. Operations already present in existing win over incoming ones
// with the same ID, which protects a confirmed operation from being
// overwritten by a stale re-fetch. The result is ordered newest first with
// identifier order breaking timestamp ties, and the function is
// idempotent: merging a merge result with the same incoming set changes
// nothing.
func MergeOperations(existing, incoming []*model.Operation) []*model.Operation {
	known := make(map[string]struct{}, len(existing))
	for _, op := range existing {
		known[op.ID] = struct{}{}
	}

	merged := make([]*model.Operation, 0, len(existing)+len(incoming))
	for _, op := range incoming {
		if _, ok := known[op.ID]; ok {
			continue
		}
		known[op.ID] = struct{}{}
		merged = append(merged, op)
	}
	merged = append(merged, existing...)

	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].Date.Equal(merged[j].Date) {
			return merged[i].Date.After(merged[j].Date)
		}
		return merged[i].ID > merged[j].ID
	})
	return merged
}
