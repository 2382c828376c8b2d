package service

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/PlatONnetwork/wallet-core/internal/clock"
	"github.com/PlatONnetwork/wallet-core/internal/model"
	"github.com/PlatONnetwork/wallet-core/pkg/workerpool"
)

// SyncConfig tunes the reconciliation engine.
type SyncConfig struct {
	// ReorgSafetyThreshold is the minimum block age below which an
	// operation is not trusted as permanent and never used as a resume
	// cursor.
	ReorgSafetyThreshold uint64
	// PageSize is the indexer page size for history fetches.
	PageSize int
	// MaxPages bounds the paged history walk.
	MaxPages int
}

// DefaultSyncConfig returns the engine defaults.
func DefaultSyncConfig() SyncConfig {
	return SyncConfig{
		ReorgSafetyThreshold: 80,
		PageSize:             50,
		MaxPages:             20,
	}
}

// ReconcileRequest identifies the account to reconcile and carries the
// caller's filtering rules. Previous may be nil for a first scan.
type ReconcileRequest struct {
	Currency            *model.Currency
	Address             string
	DerivationPath      string
	DerivationMode      string
	Index               int
	Previous            *model.Account
	BlacklistedTokenIDs []string
}

// SyncService reconciles a local account snapshot against the remote
// ledger and indexer. Callers must serialize Reconcile calls per account;
// the previous snapshot is treated as immutable input and unchanged
// SubAccounts are returned by reference.
type SyncService struct {
	node    NodeClient
	indexer IndexerClient
	tokens  TokenRegistry
	clk     clock.Clock
	logger  *zap.Logger
	metrics SyncMetrics
	cfg     SyncConfig
}

// NewSyncService builds the reconciliation engine with its collaborators.
func NewSyncService(
	node NodeClient,
	indexer IndexerClient,
	tokens TokenRegistry,
	clk clock.Clock,
	logger *zap.Logger,
	metrics SyncMetrics,
	cfg SyncConfig,
) (*SyncService, error) {
	if node == nil || indexer == nil || tokens == nil {
		return nil, errors.New("sync service: nil collaborator")
	}
	if clk == nil {
		clk = clock.System{}
	}
	if cfg.ReorgSafetyThreshold == 0 || cfg.PageSize <= 0 || cfg.MaxPages <= 0 {
		cfg = DefaultSyncConfig()
	}
	return &SyncService{
		node:    node,
		indexer: indexer,
		tokens:  tokens,
		clk:     clk,
		logger:  logger,
		metrics: metrics,
		cfg:     cfg,
	}, nil
}

// Reconcile produces a new snapshot for the requested account. Any remote
// failure aborts the whole call; the previous snapshot stays the last
// known-good state.
func (s *SyncService) Reconcile(ctx context.Context, req ReconcileRequest) (acc *model.Account, err error) {
	started := time.Now()
	incremental := false
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveReconcile(err, incremental, started)
		}
	}()

	accountID := model.AccountID(req.Currency.ID, req.Address, req.DerivationMode)

	syncHash := s.computeSyncHash(req.Currency.ID, req.BlacklistedTokenIDs)
	outdatedFilters := req.Previous == nil || req.Previous.SyncHash != syncHash

	stable := s.stableOperations(req.Previous)
	cursor := ""
	if !outdatedFilters && len(stable) > 0 {
		cursor = stable[0].BlockHash
	}
	incremental = cursor != ""

	txs, blockHeight, balance, err := s.fetchRemoteState(ctx, req.Address, cursor)
	if err != nil {
		return nil, err
	}

	if cursor == "" && len(txs) == 0 {
		s.logger.Debug("no operations on address",
			zap.String("address", req.Address),
			zap.Uint64("block_height", blockHeight))
		return &model.Account{
			ID:               accountID,
			CurrencyID:       req.Currency.ID,
			Address:          req.Address,
			DerivationPath:   req.DerivationPath,
			DerivationMode:   req.DerivationMode,
			Index:            req.Index,
			Balance:          balance,
			SpendableBalance: new(big.Int).Set(balance),
			BlockHeight:      blockHeight,
			Operations:       []*model.Operation{},
			SubAccounts:      []*model.SubAccount{},
			SyncHash:         syncHash,
			LastSyncDate:     s.clk.Now(),
		}, nil
	}

	newOps := s.transactionsToOperations(accountID, req.Address, txs)

	perTokenAccountOps := bucketSubOperations(newOps)

	tokenAccounts := s.reconcileTokenAccounts(req.Currency.ID, accountID, req.Previous, perTokenAccountOps, req.BlacklistedTokenIDs)

	s.logger.Debug("reconciling fetched activity",
		zap.String("address", req.Address),
		zap.Int("transactions", len(txs)),
		zap.Int("new_operations", len(newOps)),
		zap.Int("token_accounts", len(tokenAccounts)))

	tokenAccounts, err = s.loadTokenBalances(ctx, req.Address, tokenAccounts)
	if err != nil {
		return nil, err
	}

	subAccounts := s.reconcileSubAccountList(tokenAccounts, req.Previous)

	// Token account membership may have changed; relink the nested
	// sub-operations of every fresh top-level operation.
	for i, op := range newOps {
		relinked := *op
		relinked.SubOperations = inferSubOperations(op.Hash, subAccounts)
		newOps[i] = &relinked
	}

	operations := MergeOperations(stable, newOps)

	return &model.Account{
		ID:               accountID,
		CurrencyID:       req.Currency.ID,
		Address:          req.Address,
		DerivationPath:   req.DerivationPath,
		DerivationMode:   req.DerivationMode,
		Index:            req.Index,
		Balance:          balance,
		SpendableBalance: new(big.Int).Set(balance),
		BlockHeight:      blockHeight,
		Operations:       operations,
		SubAccounts:      subAccounts,
		SyncHash:         syncHash,
		LastSyncDate:     s.clk.Now(),
	}, nil
}

// computeSyncHash fingerprints the filtering rules that shaped a merge:
// the blacklist and the size of the known token universe. When either
// changes, previously dropped operations may become relevant and the next
// sync must be a full one.
func (s *SyncService) computeSyncHash(currencyID string, blacklisted []string) string {
	ids := append([]string(nil), blacklisted...)
	sort.Strings(ids)
	tokenCount := len(s.tokens.ListTokens(currencyID, true))
	digest := sha256.Sum256([]byte(fmt.Sprintf("%s_%d", strings.Join(ids, ","), tokenCount)))
	return fmt.Sprintf("%x", digest[:8])
}

// stableOperations returns the prior operations old enough to be immune to
// chain reorganizations, newest first.
func (s *SyncService) stableOperations(previous *model.Account) []*model.Operation {
	if previous == nil {
		return nil
	}
	stable := make([]*model.Operation, 0, len(previous.Operations))
	for _, op := range previous.Operations {
		// Heights above the snapshot height can happen because the height
		// and the history come from two different backends. Comparing
		// before subtracting keeps the unsigned arithmetic from wrapping.
		if op.BlockHeight == nil || *op.BlockHeight > previous.BlockHeight {
			continue
		}
		if previous.BlockHeight-*op.BlockHeight > s.cfg.ReorgSafetyThreshold {
			stable = append(stable, op)
		}
	}
	return stable
}

// fetchRemoteState runs the three independent remote reads concurrently:
// paged history, current block height, and the native balance.
func (s *SyncService) fetchRemoteState(ctx context.Context, address, cursor string) ([]*model.IndexerTransaction, uint64, *big.Int, error) {
	var (
		txs         []*model.IndexerTransaction
		blockHeight uint64
		balance     *big.Int
	)

	fetches := []func(context.Context) error{
		func(ctx context.Context) error {
			fetched, err := s.fetchAllTransactions(ctx, address, cursor)
			if err != nil {
				return fmt.Errorf("fetch transactions for %s: %w", address, err)
			}
			txs = fetched
			return nil
		},
		func(ctx context.Context) error {
			height, err := s.node.BlockHeight(ctx)
			if err != nil {
				return fmt.Errorf("fetch block height: %w", err)
			}
			blockHeight = height
			return nil
		},
		func(ctx context.Context) error {
			fetched, err := s.node.Balance(ctx, address)
			if err != nil {
				return fmt.Errorf("fetch balance for %s: %w", address, err)
			}
			balance = fetched
			return nil
		},
	}

	if err := workerpool.Process(ctx, len(fetches), fetches, func(ctx context.Context, fetch func(context.Context) error) error {
		return fetch(ctx)
	}); err != nil {
		return nil, 0, nil, err
	}
	return txs, blockHeight, balance, nil
}

// fetchAllTransactions pages through the indexer until a short page or the
// safety limit.
func (s *SyncService) fetchAllTransactions(ctx context.Context, address, cursor string) ([]*model.IndexerTransaction, error) {
	var txs []*model.IndexerTransaction
	for page := 0; page < s.cfg.MaxPages; page++ {
		result, err := s.indexer.Transactions(ctx, address, cursor, s.cfg.PageSize)
		if err != nil {
			return nil, err
		}
		txs = append(txs, result.Items...)
		if !result.Truncated || len(result.Items) == 0 {
			return txs, nil
		}
		cursor = result.Items[len(result.Items)-1].BlockHash
	}
	return txs, nil
}

// transactionsToOperations expands fetched transactions into operations.
// A self transfer yields both an OUT and an IN, with the IN nudged one
// millisecond later so history ordering stays deterministic.
func (s *SyncService) transactionsToOperations(accountID, address string, txs []*model.IndexerTransaction) []*model.Operation {
	ops := make([]*model.Operation, 0, len(txs))
	addr := strings.ToLower(address)
	for _, tx := range txs {
		sending := addr == strings.ToLower(tx.From)
		receiving := addr == strings.ToLower(tx.To)

		subOps := s.transferEventsToSubOperations(accountID, addr, tx)

		if sending {
			typ := model.OperationOut
			if tx.Value.Sign() == 0 {
				typ = model.OperationFees
			}
			value := new(big.Int).Add(tx.Value, tx.Fee)
			if tx.Failed {
				// Only the fee left the account.
				value = new(big.Int).Set(tx.Fee)
			}
			ops = append(ops, &model.Operation{
				ID:            model.OperationID(accountID, tx.Hash, typ),
				Hash:          tx.Hash,
				Type:          typ,
				Value:         value,
				Fee:           tx.Fee,
				BlockHeight:   tx.BlockHeight,
				BlockHash:     tx.BlockHash,
				AccountID:     accountID,
				Senders:       []string{tx.From},
				Recipients:    []string{tx.To},
				Date:          tx.Timestamp,
				HasFailed:     tx.Failed,
				SubOperations: subOps,
			})
		}
		if receiving {
			op := &model.Operation{
				ID:          model.OperationID(accountID, tx.Hash, model.OperationIn),
				Hash:        tx.Hash,
				Type:        model.OperationIn,
				Value:       tx.Value,
				Fee:         tx.Fee,
				BlockHeight: tx.BlockHeight,
				BlockHash:   tx.BlockHash,
				AccountID:   accountID,
				Senders:     []string{tx.From},
				Recipients:  []string{tx.To},
				Date:        tx.Timestamp,
			}
			if sending {
				op.Date = tx.Timestamp.Add(time.Millisecond)
			} else {
				op.SubOperations = subOps
			}
			ops = append(ops, op)
		}
	}
	return ops
}

// transferEventsToSubOperations converts the token movements carried by a
// transaction into operations scoped to their token accounts.
func (s *SyncService) transferEventsToSubOperations(accountID, addr string, tx *model.IndexerTransaction) []*model.Operation {
	var subOps []*model.Operation
	for _, ev := range tx.TransferEvents {
		token, ok := s.tokens.TokenByContract(ev.Contract)
		if !ok {
			continue
		}
		from := strings.ToLower(ev.From)
		to := strings.ToLower(ev.To)
		if addr != from && addr != to {
			continue
		}
		tokenAccountID := model.TokenAccountID(accountID, token)
		typ := model.OperationIn
		if addr == from {
			typ = model.OperationOut
		}
		subOps = append(subOps, &model.Operation{
			ID:          model.OperationID(tokenAccountID, tx.Hash, typ),
			Hash:        tx.Hash,
			Type:        typ,
			Value:       ev.Amount,
			Fee:         tx.Fee,
			BlockHeight: tx.BlockHeight,
			BlockHash:   tx.BlockHash,
			AccountID:   tokenAccountID,
			Senders:     []string{ev.From},
			Recipients:  []string{ev.To},
			Date:        tx.Timestamp,
		})
	}
	return subOps
}

// bucketSubOperations groups the nested token operations of fresh
// top-level operations by their token account.
func bucketSubOperations(ops []*model.Operation) map[string][]*model.Operation {
	buckets := map[string][]*model.Operation{}
	for _, op := range ops {
		for _, sub := range op.SubOperations {
			buckets[sub.AccountID] = append(buckets[sub.AccountID], sub)
		}
	}
	return buckets
}

// reconcileTokenAccounts builds the candidate SubAccount set: the union of
// previously known token accounts and those touched by this sync.
// Blacklisted tokens are dropped; untouched accounts keep their previous
// reference.
func (s *SyncService) reconcileTokenAccounts(
	currencyID, accountID string,
	previous *model.Account,
	perTokenAccountOps map[string][]*model.Operation,
	blacklisted []string,
) []*model.SubAccount {
	blacklist := make(map[string]struct{}, len(blacklisted))
	for _, id := range blacklisted {
		blacklist[id] = struct{}{}
	}

	existing := map[string]*model.SubAccount{}
	var order []string
	if previous != nil {
		for _, sub := range previous.SubAccounts {
			// Re-encode against the current parent so identifiers converge
			// after any account-id migration.
			_, tokenID, err := model.DecodeTokenAccountID(sub.ID)
			if err != nil {
				continue
			}
			id := accountID + "+" + tokenID
			existing[id] = sub
			order = append(order, id)
		}
	}
	for _, id := range sortedKeys(perTokenAccountOps) {
		if _, ok := existing[id]; !ok {
			order = append(order, id)
		}
	}

	out := make([]*model.SubAccount, 0, len(order))
	for _, id := range order {
		prior := existing[id]
		newOps := perTokenAccountOps[id]

		var token *model.TokenCurrency
		if prior != nil {
			token = prior.Token
		} else if len(newOps) > 0 {
			token = s.tokenForAccountID(currencyID, id)
		}
		if token == nil {
			continue
		}
		if _, ok := blacklist[token.ID]; ok {
			continue
		}
		if prior != nil && len(newOps) == 0 {
			out = append(out, prior)
			continue
		}

		var priorOps []*model.Operation
		creationDate := s.clk.Now()
		balance := new(big.Int)
		if prior != nil {
			priorOps = prior.Operations
			creationDate = prior.CreationDate
			balance = prior.Balance
		}
		operations := MergeOperations(priorOps, newOps)
		if prior == nil && len(operations) > 0 {
			creationDate = operations[len(operations)-1].Date
		}
		out = append(out, &model.SubAccount{
			ID:               id,
			ParentID:         accountID,
			Token:            token,
			Balance:          balance,
			SpendableBalance: balance,
			CreationDate:     creationDate,
			Operations:       operations,
		})
	}
	return out
}

func (s *SyncService) tokenForAccountID(currencyID, id string) *model.TokenCurrency {
	_, tokenID, err := model.DecodeTokenAccountID(id)
	if err != nil {
		return nil
	}
	for _, token := range s.tokens.ListTokens(currencyID, true) {
		if token.ID == tokenID {
			return token
		}
	}
	return nil
}

// loadTokenBalances resolves every candidate token account's balance in
// one batched call. A contract missing from the response means the token
// is de-listed and its account is dropped.
func (s *SyncService) loadTokenBalances(ctx context.Context, address string, tokenAccounts []*model.SubAccount) ([]*model.SubAccount, error) {
	if len(tokenAccounts) == 0 {
		return tokenAccounts, nil
	}
	contracts := make([]string, 0, len(tokenAccounts))
	for _, sub := range tokenAccounts {
		contracts = append(contracts, sub.Token.ContractAddress)
	}
	balances, err := s.node.TokenBalances(ctx, address, contracts)
	if err != nil {
		return nil, fmt.Errorf("fetch token balances for %s: %w", address, err)
	}

	out := make([]*model.SubAccount, 0, len(tokenAccounts))
	for _, sub := range tokenAccounts {
		balance, ok := balances[strings.ToLower(sub.Token.ContractAddress)]
		if !ok {
			s.logger.Warn("token balance missing, dropping token account",
				zap.String("token", sub.Token.ID))
			continue
		}
		if sub.Balance != nil && sub.Balance.Cmp(balance) == 0 {
			out = append(out, sub)
			continue
		}
		updated := *sub
		updated.Balance = balance
		updated.SpendableBalance = balance
		out = append(out, &updated)
	}
	return out, nil
}

// reconcileSubAccountList compares the freshly built token accounts with
// the previous snapshot's by shallow field equality, returning the exact
// previous references (and, when nothing changed at all, the previous
// slice itself) so callers can use identity as a change signal.
func (s *SyncService) reconcileSubAccountList(fresh []*model.SubAccount, previous *model.Account) []*model.SubAccount {
	if previous == nil {
		return fresh
	}
	prior := previous.SubAccounts
	changed := len(fresh) != len(prior)

	out := make([]*model.SubAccount, len(fresh))
	for i, sub := range fresh {
		var match *model.SubAccount
		for _, p := range prior {
			if p.ID == sub.ID {
				match = p
				break
			}
		}
		switch {
		case match == nil:
			changed = true
			out[i] = sub
		case match.ShallowEqual(sub):
			out[i] = match
		default:
			changed = true
			out[i] = sub
		}
	}
	if !changed {
		s.logger.Debug("incremental sync: sub accounts unchanged",
			zap.Int("count", len(prior)))
		return prior
	}
	return out
}

// inferSubOperations collects, from the final SubAccount set, the token
// operations carried by the given transaction hash.
func inferSubOperations(hash string, subAccounts []*model.SubAccount) []*model.Operation {
	var out []*model.Operation
	for _, sub := range subAccounts {
		for _, op := range sub.Operations {
			if op.Hash == hash {
				out = append(out, op)
			}
		}
	}
	return out
}

func sortedKeys(m map[string][]*model.Operation) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
