package model

import (
	"fmt"
	"math/big"
	"strings"
	"time"
)

// Account is the root snapshot for one (currency, address, derivation mode)
// triple. Snapshots are immutable: every reconciliation returns a new
// Account and may share unchanged SubAccounts with its input by reference.
type Account struct {
	ID               string
	CurrencyID       string
	Address          string
	DerivationPath   string
	DerivationMode   string
	Index            int
	Balance          *big.Int
	SpendableBalance *big.Int
	BlockHeight      uint64
	// Operations is the full history, newest first, deduplicated by ID.
	Operations  []*Operation
	SubAccounts []*SubAccount
	// SyncHash captures the token universe and blacklist that produced the
	// current merge. A mismatch forces a full resync.
	SyncHash     string
	LastSyncDate time.Time
}

// AccountID builds the stable account identifier.
func AccountID(currencyID, address, derivationMode string) string {
	return fmt.Sprintf("platon:1:%s:%s:%s", currencyID, address, derivationMode)
}

// Empty reports whether the account has never seen activity. The scanner
// uses this to decide when to stop probing a derivation mode.
func (a *Account) Empty() bool {
	return len(a.Operations) == 0 && (a.Balance == nil || a.Balance.Sign() == 0)
}

// SubAccount is a balance+history view scoped to one token contract under a
// parent account. At most one SubAccount exists per (parent, token) pair.
type SubAccount struct {
	ID               string
	ParentID         string
	Token            *TokenCurrency
	Balance          *big.Int
	SpendableBalance *big.Int
	CreationDate     time.Time
	Operations       []*Operation
}

const tokenAccountIDSeparator = "+"

// TokenAccountID derives the SubAccount identifier from its parent and
// token so that it survives a full resynchronization.
func TokenAccountID(parentID string, token *TokenCurrency) string {
	return parentID + tokenAccountIDSeparator + token.ID
}

// DecodeTokenAccountID splits a SubAccount identifier back into the parent
// account ID and the token ID.
func DecodeTokenAccountID(id string) (parentID, tokenID string, err error) {
	i := strings.LastIndex(id, tokenAccountIDSeparator)
	if i <= 0 || i == len(id)-1 {
		return "", "", fmt.Errorf("malformed token account id %q", id)
	}
	return id[:i], id[i+1:], nil
}

// ShallowEqual reports whether two SubAccounts carry identical fields,
// treating the operation history as changed unless it is the same slice.
// Reconciliation relies on this to decide when the previous reference can
// be returned unchanged.
func (s *SubAccount) ShallowEqual(other *SubAccount) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	if s.ID != other.ID || s.ParentID != other.ParentID || s.Token != other.Token {
		return false
	}
	if !bigEqual(s.Balance, other.Balance) || !bigEqual(s.SpendableBalance, other.SpendableBalance) {
		return false
	}
	if !s.CreationDate.Equal(other.CreationDate) {
		return false
	}
	return sameOperations(s.Operations, other.Operations)
}

func bigEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

func sameOperations(a, b []*Operation) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
