package model

import (
	"bytes"
	"math/big"
)

// FeeQuote is the fee-market barometer served by the node.
type FeeQuote struct {
	Low    *big.Int
	Medium *big.Int
	High   *big.Int
}

// NetworkInfo is the resolved fee-market context attached to a draft.
type NetworkInfo struct {
	Family   string
	GasPrice *FeeQuote
}

// DefaultGasLimit is the gas cost of a plain value transfer.
var DefaultGasLimit = big.NewInt(21000)

// DraftTransaction is the staging object for an outgoing transaction. It is
// handled with value semantics: every staging step returns a new draft and
// never mutates its input, so an unchanged prepare round returns a draft
// equal to its input.
type DraftTransaction struct {
	Family            string
	Mode              string
	Amount            *big.Int
	Recipient         string
	UseBech32         bool
	GasPrice          *big.Int
	UserGasLimit      *big.Int
	EstimatedGasLimit *big.Int
	NetworkInfo       *NetworkInfo
	// Nonce is resolved lazily by the signer when nil.
	Nonce        *uint64
	Data         []byte
	UseAllAmount bool
	// TokenAccountID selects the SubAccount a token-mode draft spends from.
	TokenAccountID string
}

// EffectiveGasLimit returns the gas limit the transaction will carry: the
// user override when present, else the network estimate, else the plain
// transfer default.
func (d *DraftTransaction) EffectiveGasLimit() *big.Int {
	if d.UserGasLimit != nil {
		return d.UserGasLimit
	}
	if d.EstimatedGasLimit != nil {
		return d.EstimatedGasLimit
	}
	return DefaultGasLimit
}

// Clone returns a field-for-field copy of the draft.
func (d *DraftTransaction) Clone() *DraftTransaction {
	next := *d
	return &next
}

// Equal reports field-wise equality between two drafts. Numeric fields
// compare by value, NetworkInfo by reference.
func (d *DraftTransaction) Equal(other *DraftTransaction) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	return d.Family == other.Family &&
		d.Mode == other.Mode &&
		bigEqual(d.Amount, other.Amount) &&
		d.Recipient == other.Recipient &&
		d.UseBech32 == other.UseBech32 &&
		bigEqual(d.GasPrice, other.GasPrice) &&
		bigEqual(d.UserGasLimit, other.UserGasLimit) &&
		bigEqual(d.EstimatedGasLimit, other.EstimatedGasLimit) &&
		d.NetworkInfo == other.NetworkInfo &&
		uint64PtrEqual(d.Nonce, other.Nonce) &&
		bytes.Equal(d.Data, other.Data) &&
		d.UseAllAmount == other.UseAllAmount &&
		d.TokenAccountID == other.TokenAccountID
}

func uint64PtrEqual(a, b *uint64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// GasLimitRequest is the dry-run request handed to the node's gas
// estimator.
type GasLimitRequest struct {
	From     string
	To       string
	Value    *big.Int
	Data     []byte
	GasPrice *big.Int
}
