package model

import (
	"math/big"
	"time"
)

// TokenTransferEvent is a token movement carried by a transaction.
type TokenTransferEvent struct {
	Contract string
	From     string
	To       string
	Amount   *big.Int
}

// IndexerTransaction is one ledger transaction as reported by the indexer,
// normalized to chain base units.
type IndexerTransaction struct {
	Hash   string
	From   string
	To     string
	Value  *big.Int
	Fee    *big.Int
	Nonce  uint64
	Failed bool
	// BlockHeight is nil while the transaction is unconfirmed.
	BlockHeight    *uint64
	BlockHash      string
	Timestamp      time.Time
	TransferEvents []TokenTransferEvent
}

// TransactionPage is one page of indexer results.
type TransactionPage struct {
	Items     []*IndexerTransaction
	Truncated bool
}

// DerivedAddress is the device's answer to an address derivation request.
type DerivedAddress struct {
	Address string
	Path    string
}

// DeviceSignature is the raw ECDSA signature returned by the signing
// device, hex encoded without 0x prefixes.
type DeviceSignature struct {
	R string
	S string
	V string
}
