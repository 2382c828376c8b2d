package service

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/PlatONnetwork/wallet-core/internal/address"
	"github.com/PlatONnetwork/wallet-core/internal/model"
)

// transactionMode implements the per-mode part of staging: validation
// totals, the wire payload, and the provisional operation shape. Generic
// rules (recipient, fee loading, fee affordability) stay in GetStatus.
type transactionMode interface {
	// FillStatus computes Amount and TotalSpent and records mode-specific
	// errors. It runs before the generic rules, which never overwrite the
	// fields it claims.
	FillStatus(account *model.Account, draft *model.DraftTransaction, status *model.TransactionStatus) error
	// FillPayload resolves the on-wire destination, value and calldata.
	FillPayload(account *model.Account, draft *model.DraftTransaction) (to string, value *big.Int, data []byte, err error)
	// FillProvisionalOperation shapes the optimistic operation emitted
	// right after signing, before the transaction has a hash.
	FillProvisionalOperation(account *model.Account, draft *model.DraftTransaction, op *model.Operation) error
}

const (
	ModeSend          = "send"
	ModeTokenTransfer = "erc20.transfer"
)

var transactionModes = map[string]transactionMode{
	ModeSend:          sendMode{},
	ModeTokenTransfer: tokenTransferMode{},
}

func modeFor(draft *model.DraftTransaction) (transactionMode, error) {
	mode := draft.Mode
	if mode == "" {
		mode = ModeSend
	}
	m, ok := transactionModes[mode]
	if !ok {
		return nil, fmt.Errorf("unsupported transaction mode %q", draft.Mode)
	}
	return m, nil
}

// sendMode moves native value to the recipient.
type sendMode struct{}

func (sendMode) FillStatus(account *model.Account, draft *model.DraftTransaction, status *model.TransactionStatus) error {
	if draft.UseAllAmount {
		amount := new(big.Int).Sub(account.SpendableBalance, status.EstimatedFees)
		if amount.Sign() < 0 {
			amount.SetInt64(0)
		}
		status.Amount = amount
		status.TotalSpent = new(big.Int).Set(account.SpendableBalance)
		return nil
	}
	amount := new(big.Int)
	if draft.Amount != nil {
		amount.Set(draft.Amount)
	}
	status.Amount = amount
	status.TotalSpent = new(big.Int).Add(amount, status.EstimatedFees)
	if status.TotalSpent.Cmp(account.SpendableBalance) > 0 {
		status.SetErrorIfUnset(model.StatusFieldAmount, model.ErrNotEnoughBalance)
	}
	return nil
}

func (sendMode) FillPayload(account *model.Account, draft *model.DraftTransaction) (string, *big.Int, []byte, error) {
	currency := model.Platon()
	to, _, err := address.ResolveRecipient(currency, draft.Recipient)
	if err != nil {
		return "", nil, nil, err
	}
	value := new(big.Int)
	if draft.Amount != nil {
		value.Set(draft.Amount)
	}
	return to, value, draft.Data, nil
}

func (sendMode) FillProvisionalOperation(account *model.Account, draft *model.DraftTransaction, op *model.Operation) error {
	fee := new(big.Int).Mul(draft.GasPrice, draft.EffectiveGasLimit())
	value := new(big.Int).Add(draft.Amount, fee)
	op.Type = model.OperationOut
	op.Value = value
	op.Fee = fee
	op.Recipients = []string{draft.Recipient}
	return nil
}

// tokenTransferMode moves token units out of a SubAccount. The parent
// account pays the network fee; the value travels in calldata.
type tokenTransferMode struct{}

// transferSelector is the 4-byte id of transfer(address,uint256).
var transferSelector = []byte{0xa9, 0x05, 0x9c, 0xbb}

func (tokenTransferMode) FillStatus(account *model.Account, draft *model.DraftTransaction, status *model.TransactionStatus) error {
	sub := findSubAccount(account, draft.TokenAccountID)
	if sub == nil {
		return model.ErrUnknownTokenAccount
	}
	if draft.UseAllAmount {
		status.Amount = new(big.Int).Set(sub.SpendableBalance)
	} else {
		amount := new(big.Int)
		if draft.Amount != nil {
			amount.Set(draft.Amount)
		}
		status.Amount = amount
	}
	status.TotalSpent = new(big.Int).Set(status.Amount)
	if status.TotalSpent.Cmp(sub.SpendableBalance) > 0 {
		status.SetErrorIfUnset(model.StatusFieldAmount, model.ErrNotEnoughBalance)
	}
	if status.EstimatedFees.Cmp(account.SpendableBalance) > 0 {
		status.SetErrorIfUnset(model.StatusFieldGasPrice, model.ErrNotEnoughGas)
	}
	return nil
}

func (m tokenTransferMode) FillPayload(account *model.Account, draft *model.DraftTransaction) (string, *big.Int, []byte, error) {
	sub := findSubAccount(account, draft.TokenAccountID)
	if sub == nil {
		return "", nil, nil, model.ErrUnknownTokenAccount
	}
	currency := model.Platon()
	recipient, _, err := address.ResolveRecipient(currency, draft.Recipient)
	if err != nil {
		return "", nil, nil, err
	}
	amount := new(big.Int)
	if draft.Amount != nil {
		amount.Set(draft.Amount)
	}
	data := make([]byte, 0, 4+64)
	data = append(data, transferSelector...)
	data = append(data, common.LeftPadBytes(common.HexToAddress(recipient).Bytes(), 32)...)
	data = append(data, common.LeftPadBytes(amount.Bytes(), 32)...)
	return sub.Token.ContractAddress, new(big.Int), data, nil
}

func (tokenTransferMode) FillProvisionalOperation(account *model.Account, draft *model.DraftTransaction, op *model.Operation) error {
	sub := findSubAccount(account, draft.TokenAccountID)
	if sub == nil {
		return model.ErrUnknownTokenAccount
	}
	fee := new(big.Int).Mul(draft.GasPrice, draft.EffectiveGasLimit())
	op.Type = model.OperationOut
	op.Value = new(big.Int).Set(fee)
	op.Fee = fee
	op.Recipients = []string{sub.Token.ContractAddress}

	tokenOp := &model.Operation{
		ID:         model.OperationID(sub.ID, "", model.OperationOut),
		Type:       model.OperationOut,
		Value:      new(big.Int).Set(draft.Amount),
		Fee:        fee,
		AccountID:  sub.ID,
		Senders:    []string{account.Address},
		Recipients: []string{draft.Recipient},
		Date:       op.Date,
	}
	op.SubOperations = []*model.Operation{tokenOp}
	return nil
}

func findSubAccount(account *model.Account, id string) *model.SubAccount {
	for _, sub := range account.SubAccounts {
		if sub.ID == id {
			return sub
		}
	}
	return nil
}
