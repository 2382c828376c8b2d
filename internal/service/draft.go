package service

import (
	"context"
	"errors"
	"math/big"

	"go.uber.org/zap"

	"github.com/PlatONnetwork/wallet-core/internal/address"
	"github.com/PlatONnetwork/wallet-core/internal/model"
)

// NewDraft returns the default outgoing transaction draft for the native
// currency.
func NewDraft() *model.DraftTransaction {
	return &model.DraftTransaction{
		Family: "platon",
		Mode:   ModeSend,
		Amount: new(big.Int),
	}
}

// DraftPatch carries the fields a caller wants to change on a draft. Nil
// pointer fields are left untouched.
type DraftPatch struct {
	Mode           *string
	Amount         *big.Int
	Recipient      *string
	GasPrice       *big.Int
	UserGasLimit   *big.Int
	Nonce          *uint64
	Data           []byte
	UseAllAmount   *bool
	TokenAccountID *string
}

// UpdateDraft applies a patch and returns a new draft. Changing the
// recipient invalidates both gas limits, since the estimate depends on the
// destination.
func UpdateDraft(draft *model.DraftTransaction, patch DraftPatch) *model.DraftTransaction {
	next := draft.Clone()
	if patch.Mode != nil {
		next.Mode = *patch.Mode
	}
	if patch.Amount != nil {
		next.Amount = patch.Amount
	}
	if patch.Recipient != nil && *patch.Recipient != next.Recipient {
		next.Recipient = *patch.Recipient
		next.UserGasLimit = nil
		next.EstimatedGasLimit = nil
	}
	if patch.GasPrice != nil {
		next.GasPrice = patch.GasPrice
	}
	if patch.UserGasLimit != nil {
		next.UserGasLimit = patch.UserGasLimit
	}
	if patch.Nonce != nil {
		next.Nonce = patch.Nonce
	}
	if patch.Data != nil {
		next.Data = patch.Data
	}
	if patch.UseAllAmount != nil {
		next.UseAllAmount = *patch.UseAllAmount
	}
	if patch.TokenAccountID != nil {
		next.TokenAccountID = *patch.TokenAccountID
	}
	return next
}

// TransactionService stages and validates outgoing transactions.
type TransactionService struct {
	node   NodeClient
	logger *zap.Logger
}

// NewTransactionService builds the staging service.
func NewTransactionService(node NodeClient, logger *zap.Logger) (*TransactionService, error) {
	if node == nil {
		return nil, errors.New("transaction service: nil node client")
	}
	return &TransactionService{node: node, logger: logger}, nil
}

// PrepareDraft resolves what the draft is missing for validation and
// signing: the fee-market context, a gas price, and a gas limit estimate.
// When nothing needs resolving, the input draft itself is returned, so
// callers can use pointer identity to detect a settled draft.
func (s *TransactionService) PrepareDraft(ctx context.Context, account *model.Account, draft *model.DraftTransaction) (*model.DraftTransaction, error) {
	next := draft.Clone()

	if next.Recipient != "" {
		if _, usedBech32, err := address.ResolveRecipient(model.Platon(), next.Recipient); err == nil {
			next.UseBech32 = usedBech32
		}
	}

	if next.NetworkInfo == nil {
		quote, err := s.node.FeeQuote(ctx)
		if err != nil {
			return nil, err
		}
		next.NetworkInfo = &model.NetworkInfo{Family: next.Family, GasPrice: quote}
	}
	if next.GasPrice == nil {
		next.GasPrice = next.NetworkInfo.GasPrice.Medium
	}

	if next.Recipient != "" && next.EstimatedGasLimit == nil && next.UserGasLimit == nil {
		s.estimateGasLimit(ctx, account, next)
	}

	if next.Equal(draft) {
		return draft, nil
	}
	return next, nil
}

// estimateGasLimit asks the node for a dry-run gas estimate. A failed
// estimate is not fatal at staging time; the draft simply stays without a
// limit and validation reports the missing fee.
func (s *TransactionService) estimateGasLimit(ctx context.Context, account *model.Account, draft *model.DraftTransaction) {
	mode, err := modeFor(draft)
	if err != nil {
		return
	}
	to, value, data, err := mode.FillPayload(account, draft)
	if err != nil {
		return
	}
	limit, err := s.node.EstimateGasLimit(ctx, model.GasLimitRequest{
		From:     account.Address,
		To:       to,
		Value:    value,
		Data:     data,
		GasPrice: draft.GasPrice,
	})
	if err != nil {
		s.logger.Warn("gas limit estimation failed",
			zap.String("recipient", draft.Recipient),
			zap.Error(err))
		return
	}
	draft.EstimatedGasLimit = limit
}

// EstimateMaxSpendable returns the largest amount the draft could send
// after fees. The draft is not mutated.
func (s *TransactionService) EstimateMaxSpendable(ctx context.Context, account *model.Account, draft *model.DraftTransaction) (*big.Int, error) {
	probe := draft.Clone()
	probe.UseAllAmount = true
	prepared, err := s.PrepareDraft(ctx, account, probe)
	if err != nil {
		return nil, err
	}
	status, err := s.GetStatus(account, prepared)
	if err != nil {
		return nil, err
	}
	return status.Amount, nil
}
