// Package service implements the wallet core: the derivation account
// scanner, the incremental synchronization engine, transaction staging and
// validation, and the device signing orchestrator.
package service

import (
	"context"
	"math/big"
	"time"

	"github.com/PlatONnetwork/wallet-core/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeClient is the chain node collaborator. Calls fail with the
	// transport's error; the core never retries.
	NodeClient interface {
		Balance(ctx context.Context, address string) (*big.Int, error)
		Nonce(ctx context.Context, address string) (uint64, error)
		BlockHeight(ctx context.Context) (uint64, error)
		FeeQuote(ctx context.Context) (*model.FeeQuote, error)
		EstimateGasLimit(ctx context.Context, req model.GasLimitRequest) (*big.Int, error)
		// TokenBalances resolves balances for many token contracts in one
		// batched exchange. A contract absent from the result means the
		// token is de-listed, not that its balance is zero.
		TokenBalances(ctx context.Context, address string, contracts []string) (map[string]*big.Int, error)
		SendRawTransaction(ctx context.Context, payload []byte) (string, error)
	}

	// IndexerClient serves paged transaction history for an address. An
	// empty cursor requests history from the most recent activity.
	IndexerClient interface {
		Transactions(ctx context.Context, address, blockHashCursor string, pageSize int) (*model.TransactionPage, error)
	}

	// DeviceOpener acquires the signing device. The returned handle is
	// exclusively owned by one scan or sign workflow and must be closed
	// on every exit path.
	DeviceOpener interface {
		Open(ctx context.Context) (DeviceSigner, error)
	}

	// DeviceSigner is an open, exclusively-held signing device.
	DeviceSigner interface {
		DeriveAddress(ctx context.Context, path string) (model.DerivedAddress, error)
		SignTransaction(ctx context.Context, path string, unsignedPayload []byte) (model.DeviceSignature, error)
		Close() error
	}

	// AccountReconciler refreshes one account snapshot. The scanner uses
	// it to probe each derived address.
	AccountReconciler interface {
		Reconcile(ctx context.Context, req ReconcileRequest) (*model.Account, error)
	}

	// TokenRegistry is the read-only token definition table.
	TokenRegistry interface {
		TokenByContract(contract string) (*model.TokenCurrency, bool)
		ListTokens(currencyID string, withDelisted bool) []*model.TokenCurrency
	}

	SyncMetrics interface {
		ObserveReconcile(err error, incremental bool, started time.Time)
	}
	ScanMetrics interface {
		ObserveScan(err error, discovered int, started time.Time)
	}
	SignMetrics interface {
		ObserveSign(err error, started time.Time)
	}
)
