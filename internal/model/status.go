package model

import (
	"errors"
	"fmt"
	"math/big"
)

// Status field keys. Errors and warnings attach to the logical field the UI
// should highlight.
const (
	StatusFieldRecipient = "recipient"
	StatusFieldGasPrice  = "gasPrice"
	StatusFieldGasLimit  = "gasLimit"
	StatusFieldAmount    = "amount"
	StatusFieldFee       = "feeTooHigh"
)

// Validation errors and warnings. These are advisory values attached to a
// TransactionStatus, never returned as call failures.
var (
	ErrFeeNotLoaded        = errors.New("fee quote not loaded yet")
	ErrFeeRequired         = errors.New("a fee is required")
	ErrNotEnoughGas        = errors.New("balance cannot cover the network fees")
	ErrNotEnoughBalance    = errors.New("not enough balance")
	ErrRecipientRequired   = errors.New("recipient is required")
	ErrGasLessThanEstimate = errors.New("gas limit is below the network estimate")
	ErrFeeTooHigh          = errors.New("fees are above 10% of the amount sent")
	ErrUnknownTokenAccount = errors.New("token account not found on the parent account")
)

// InvalidAddressError reports a recipient that does not parse as an address
// of the draft's currency family.
type InvalidAddressError struct {
	Address      string
	CurrencyName string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("%q is not a valid %s address", e.Address, e.CurrencyName)
}

// TransactionStatus is the computed validation result for one
// (account, draft) pair. It is a pure function of its inputs and is never
// persisted.
type TransactionStatus struct {
	Errors        map[string]error
	Warnings      map[string]error
	EstimatedFees *big.Int
	Amount        *big.Int
	TotalSpent    *big.Int
}

// NewTransactionStatus returns an empty status with zeroed totals.
func NewTransactionStatus() *TransactionStatus {
	return &TransactionStatus{
		Errors:        map[string]error{},
		Warnings:      map[string]error{},
		EstimatedFees: new(big.Int),
		Amount:        new(big.Int),
		TotalSpent:    new(big.Int),
	}
}

// SetErrorIfUnset records err on field unless an earlier rule already
// claimed that field. Mode-specific rules run before the generic ones and
// must not be overwritten.
func (s *TransactionStatus) SetErrorIfUnset(field string, err error) {
	if _, ok := s.Errors[field]; !ok {
		s.Errors[field] = err
	}
}
