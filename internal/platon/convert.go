package platon

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PlatONnetwork/wallet-core/internal/model"
)

// latMagnitude converts the indexer's decimal LAT figures to von.
const latMagnitude = 18

func latToVon(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d.Shift(latMagnitude), nil
}

// convertTransaction normalizes one indexer history entry to base units.
func convertTransaction(raw rawTransaction) (*model.IndexerTransaction, error) {
	value, err := latToVon(raw.Value)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", raw.TxHash, err)
	}
	fee, err := latToVon(raw.ActualTxCost)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", raw.TxHash, err)
	}

	tx := &model.IndexerTransaction{
		Hash:        raw.TxHash,
		From:        raw.From,
		To:          raw.To,
		Value:       value.BigInt(),
		Fee:         fee.BigInt(),
		Nonce:       raw.Nonce,
		Failed:      raw.TxReceiptStatus == 0,
		BlockHeight: raw.BlockNumber,
		BlockHash:   raw.BlockHash,
		Timestamp:   time.UnixMilli(raw.Timestamp).UTC(),
	}

	for _, ev := range raw.TokenTransfers {
		amount, err := decimal.NewFromString(ev.Value)
		if err != nil {
			return nil, fmt.Errorf("transaction %s token transfer: %w", raw.TxHash, err)
		}
		tx.TransferEvents = append(tx.TransferEvents, model.TokenTransferEvent{
			Contract: ev.Contract,
			From:     ev.From,
			To:       ev.To,
			Amount:   amount.BigInt(),
		})
	}
	return tx, nil
}
