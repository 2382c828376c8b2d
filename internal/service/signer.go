package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	"go.uber.org/zap"

	"github.com/PlatONnetwork/wallet-core/internal/clock"
	"github.com/PlatONnetwork/wallet-core/internal/model"
)

// Sign event types, in emission order.
const (
	SignEventRequested = "signature-requested"
	SignEventGranted   = "signature-granted"
	SignEventSigned    = "signed"
)

// SignEvent is one element of the signing stream. An event with Err set is
// terminal; the Operation and RawTransaction fields are only set on the
// final signed event.
type SignEvent struct {
	Type           string
	Operation      *model.Operation
	RawTransaction []byte
	Err            error
}

// SignService drives a signing device through one transaction signature
// and shapes the result for broadcast.
type SignService struct {
	node    NodeClient
	devices DeviceOpener
	clk     clock.Clock
	logger  *zap.Logger
	metrics SignMetrics
}

// NewSignService builds the signing orchestrator.
func NewSignService(node NodeClient, devices DeviceOpener, clk clock.Clock, logger *zap.Logger, metrics SignMetrics) (*SignService, error) {
	if node == nil || devices == nil {
		return nil, errors.New("sign service: nil collaborator")
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &SignService{
		node:    node,
		devices: devices,
		clk:     clk,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Sign starts the signing workflow and returns its event stream. The
// channel is closed when the workflow completes, fails, or the context is
// canceled. The draft must have been prepared; a missing gas price fails
// the workflow.
func (s *SignService) Sign(ctx context.Context, account *model.Account, draft *model.DraftTransaction) <-chan SignEvent {
	events := make(chan SignEvent)
	go func() {
		defer close(events)
		started := time.Now()
		err := s.run(ctx, account, draft, events)
		if s.metrics != nil {
			s.metrics.ObserveSign(err, started)
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			select {
			case events <- SignEvent{Err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return events
}

func (s *SignService) run(ctx context.Context, account *model.Account, draft *model.DraftTransaction, events chan<- SignEvent) error {
	if draft.GasPrice == nil {
		return model.ErrFeeNotLoaded
	}
	mode, err := modeFor(draft)
	if err != nil {
		return err
	}
	currency := model.Platon()

	nonce, err := s.resolveNonce(ctx, account, draft)
	if err != nil {
		return err
	}
	to, value, data, err := mode.FillPayload(account, draft)
	if err != nil {
		return err
	}

	gasLimit := draft.EffectiveGasLimit()
	chainID := new(big.Int).SetUint64(currency.ChainID)
	unsigned, err := encodeUnsignedTransaction(nonce, draft.GasPrice, gasLimit, to, value, data, chainID)
	if err != nil {
		return err
	}

	device, err := s.devices.Open(ctx)
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	defer func() {
		if cerr := device.Close(); cerr != nil {
			s.logger.Warn("close device", zap.Error(cerr))
		}
	}()

	if !emitSign(ctx, events, SignEvent{Type: SignEventRequested}) {
		return ctx.Err()
	}

	signature, err := device.SignTransaction(ctx, account.DerivationPath, unsigned)
	if err != nil {
		return fmt.Errorf("device signature: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !emitSign(ctx, events, SignEvent{Type: SignEventGranted}) {
		return ctx.Err()
	}

	raw, err := assembleSignedTransaction(nonce, draft.GasPrice, gasLimit, to, value, data, chainID, signature)
	if err != nil {
		return err
	}

	op := &model.Operation{
		ID:                        model.OperationID(account.ID, "", model.OperationOut),
		Type:                      model.OperationOut,
		AccountID:                 account.ID,
		Senders:                   []string{account.Address},
		TransactionSequenceNumber: &nonce,
		Date:                      s.clk.Now(),
	}
	if err := mode.FillProvisionalOperation(account, draft, op); err != nil {
		return err
	}

	s.logger.Debug("transaction signed",
		zap.String("account", account.ID),
		zap.Uint64("nonce", nonce),
		zap.Int("raw_bytes", len(raw)))

	if !emitSign(ctx, events, SignEvent{Type: SignEventSigned, Operation: op, RawTransaction: raw}) {
		return ctx.Err()
	}
	return nil
}

func (s *SignService) resolveNonce(ctx context.Context, account *model.Account, draft *model.DraftTransaction) (uint64, error) {
	if draft.Nonce != nil {
		return *draft.Nonce, nil
	}
	nonce, err := s.node.Nonce(ctx, account.Address)
	if err != nil {
		return 0, fmt.Errorf("resolve nonce for %s: %w", account.Address, err)
	}
	return nonce, nil
}

// encodeUnsignedTransaction produces the replay-protected pre-image the
// device signs: the legacy transaction fields with the chain id in the v
// slot and empty r and s.
func encodeUnsignedTransaction(nonce uint64, gasPrice, gasLimit *big.Int, to string, value *big.Int, data []byte, chainID *big.Int) ([]byte, error) {
	payload, err := rlp.EncodeToBytes([]interface{}{
		nonce,
		gasPrice,
		gasLimit,
		common.HexToAddress(to),
		value,
		data,
		chainID,
		uint(0),
		uint(0),
	})
	if err != nil {
		return nil, fmt.Errorf("encode unsigned transaction: %w", err)
	}
	return payload, nil
}

// assembleSignedTransaction folds the device signature back into a
// broadcastable transaction. The device reports v truncated to one byte,
// so only its parity is trusted and the full replay-protected v is
// recomputed from the chain id.
func assembleSignedTransaction(nonce uint64, gasPrice, gasLimit *big.Int, to string, value *big.Int, data []byte, chainID *big.Int, signature model.DeviceSignature) ([]byte, error) {
	r, ok := new(big.Int).SetString(strings.TrimPrefix(signature.R, "0x"), 16)
	if !ok {
		return nil, fmt.Errorf("malformed signature r %q", signature.R)
	}
	sv, ok := new(big.Int).SetString(strings.TrimPrefix(signature.S, "0x"), 16)
	if !ok {
		return nil, fmt.Errorf("malformed signature s %q", signature.S)
	}
	vRaw, err := strconv.ParseUint(strings.TrimPrefix(signature.V, "0x"), 16, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed signature v %q: %w", signature.V, err)
	}
	base := chainID.Uint64()*2 + 35
	parity := byte((vRaw ^ base) & 1)

	sig := make([]byte, 65)
	r.FillBytes(sig[:32])
	sv.FillBytes(sig[32:64])
	sig[64] = parity

	toAddr := common.HexToAddress(to)
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gasLimit.Uint64(),
		To:       &toAddr,
		Value:    value,
		Data:     data,
	})
	signed, err := tx.WithSignature(types.NewEIP155Signer(chainID), sig)
	if err != nil {
		return nil, fmt.Errorf("apply signature: %w", err)
	}
	raw, err := signed.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("encode signed transaction: %w", err)
	}
	return raw, nil
}

// Broadcast submits a signed transaction and rewrites the provisional
// operation with the assigned hash.
func (s *SignService) Broadcast(ctx context.Context, op *model.Operation, raw []byte) (*model.Operation, error) {
	hash, err := s.node.SendRawTransaction(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("broadcast transaction: %w", err)
	}
	return model.PatchOperationWithHash(op, hash), nil
}

func emitSign(ctx context.Context, events chan<- SignEvent, ev SignEvent) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
