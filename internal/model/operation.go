package model

import (
	"fmt"
	"math/big"
	"time"
)

// OperationType tags the direction of a ledger event relative to one account.
type OperationType string

const (
	OperationIn   OperationType = "IN"
	OperationOut  OperationType = "OUT"
	OperationFees OperationType = "FEES"
)

// Operation is an immutable, content-derived record of a single ledger
// event's effect on one account. Its ID uniquely determines all other
// fields, so re-inserting an operation with a known ID is a no-op.
type Operation struct {
	ID          string
	Hash        string
	Type        OperationType
	Value       *big.Int
	Fee         *big.Int
	BlockHeight *uint64
	BlockHash   string
	AccountID   string
	Senders     []string
	Recipients  []string
	// TransactionSequenceNumber carries the sender nonce for operations we
	// emitted ourselves. Nil for operations reconstructed from the indexer.
	TransactionSequenceNumber *uint64
	Date                      time.Time
	HasFailed                 bool
	SubOperations             []*Operation
}

// OperationID builds the deterministic operation identifier. An empty hash
// is legal for provisional operations: the real hash is patched in at
// broadcast time.
func OperationID(accountID, hash string, typ OperationType) string {
	return fmt.Sprintf("%s-%s-%s", accountID, hash, typ)
}

// Confirmed reports whether the operation is anchored in a block.
func (o *Operation) Confirmed() bool {
	return o.BlockHeight != nil
}

// PatchOperationWithHash returns a copy of a provisional operation with the
// transaction hash assigned by broadcast, recomputing every hash-derived
// identifier including nested sub-operations.
func PatchOperationWithHash(op *Operation, hash string) *Operation {
	patched := *op
	patched.Hash = hash
	patched.ID = OperationID(op.AccountID, hash, op.Type)
	if len(op.SubOperations) > 0 {
		subs := make([]*Operation, len(op.SubOperations))
		for i, sub := range op.SubOperations {
			subs[i] = PatchOperationWithHash(sub, hash)
		}
		patched.SubOperations = subs
	}
	return &patched
}
