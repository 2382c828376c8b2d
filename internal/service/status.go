package service

import (
	"math/big"

	"github.com/PlatONnetwork/wallet-core/internal/address"
	"github.com/PlatONnetwork/wallet-core/internal/model"
)

// GetStatus validates a draft against an account snapshot. The result is a
// pure function of its inputs; remote state only enters through what
// PrepareDraft already resolved onto the draft. A non-nil error means the
// draft is structurally unusable (unknown mode or token account), not that
// a field failed validation.
func (s *TransactionService) GetStatus(account *model.Account, draft *model.DraftTransaction) (*model.TransactionStatus, error) {
	mode, err := modeFor(draft)
	if err != nil {
		return nil, err
	}

	status := model.NewTransactionStatus()
	gasLimit := draft.EffectiveGasLimit()
	if draft.GasPrice != nil {
		status.EstimatedFees = new(big.Int).Mul(draft.GasPrice, gasLimit)
	}

	if err := mode.FillStatus(account, draft, status); err != nil {
		return nil, err
	}

	s.validateRecipient(draft, status)

	switch {
	case draft.GasPrice == nil:
		status.SetErrorIfUnset(model.StatusFieldGasPrice, model.ErrFeeNotLoaded)
	case gasLimit.Sign() == 0:
		status.SetErrorIfUnset(model.StatusFieldGasLimit, model.ErrFeeRequired)
	default:
		if _, amountFailed := status.Errors[model.StatusFieldAmount]; !amountFailed &&
			status.EstimatedFees.Cmp(account.SpendableBalance) > 0 {
			status.SetErrorIfUnset(model.StatusFieldGasPrice, model.ErrNotEnoughGas)
		}
	}

	if draft.UserGasLimit != nil && draft.EstimatedGasLimit != nil &&
		draft.UserGasLimit.Cmp(draft.EstimatedGasLimit) < 0 {
		status.Warnings[model.StatusFieldGasLimit] = model.ErrGasLessThanEstimate
	}
	if status.Amount.Sign() > 0 {
		threshold := new(big.Int).Mul(status.EstimatedFees, big.NewInt(10))
		if threshold.Cmp(status.Amount) > 0 {
			status.Warnings[model.StatusFieldFee] = model.ErrFeeTooHigh
		}
	}

	return status, nil
}

func (s *TransactionService) validateRecipient(draft *model.DraftTransaction, status *model.TransactionStatus) {
	if err := address.ValidateRecipient(model.Platon(), draft.Recipient); err != nil {
		status.SetErrorIfUnset(model.StatusFieldRecipient, err)
	}
}
