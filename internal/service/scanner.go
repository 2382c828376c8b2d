package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/PlatONnetwork/wallet-core/internal/derivation"
	"github.com/PlatONnetwork/wallet-core/internal/model"
)

// ScanEvent is one element of the account discovery stream. Exactly one of
// Account and Err is set; an event with Err set is terminal.
type ScanEvent struct {
	Account *model.Account
	Err     error
}

// ScanService walks the derivation space of a currency on a signing device
// and discovers the accounts with on-chain activity.
type ScanService struct {
	devices    DeviceOpener
	reconciler AccountReconciler
	logger     *zap.Logger
	metrics    ScanMetrics
}

// NewScanService builds the scanner with its collaborators.
func NewScanService(devices DeviceOpener, reconciler AccountReconciler, logger *zap.Logger, metrics ScanMetrics) (*ScanService, error) {
	if devices == nil || reconciler == nil {
		return nil, errors.New("scan service: nil collaborator")
	}
	return &ScanService{
		devices:    devices,
		reconciler: reconciler,
		logger:     logger,
		metrics:    metrics,
	}, nil
}

// Scan starts the discovery walk and returns its event stream. The channel
// is closed when the walk completes, fails, or the context is canceled.
// The device is held for the whole walk and released on every exit path.
func (s *ScanService) Scan(ctx context.Context, currency *model.Currency) <-chan ScanEvent {
	events := make(chan ScanEvent)
	go func() {
		defer close(events)
		started := time.Now()
		discovered, err := s.run(ctx, currency, events)
		if s.metrics != nil {
			s.metrics.ObserveScan(err, discovered, started)
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			select {
			case events <- ScanEvent{Err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return events
}

func (s *ScanService) run(ctx context.Context, currency *model.Currency, events chan<- ScanEvent) (int, error) {
	device, err := s.devices.Open(ctx)
	if err != nil {
		return 0, fmt.Errorf("open device: %w", err)
	}
	defer func() {
		if cerr := device.Close(); cerr != nil {
			s.logger.Warn("close device", zap.Error(cerr))
		}
	}()

	discovered := 0
	for _, mode := range derivation.ModesForCurrency(currency) {
		n, err := s.scanMode(ctx, currency, device, mode, events)
		discovered += n
		if err != nil {
			return discovered, err
		}
	}
	return discovered, nil
}

// scanMode walks one derivation mode until its index bound or until the
// consecutive-empty tolerance of the mode is used up. The first empty
// account of the canonical mode is still emitted so a caller can offer
// creating it.
func (s *ScanService) scanMode(
	ctx context.Context,
	currency *model.Currency,
	device DeviceSigner,
	mode derivation.Mode,
	events chan<- ScanEvent,
) (int, error) {
	discovered := 0
	emptyCount := 0
	emptyEmitted := false
	skip := derivation.MandatoryEmptyAccountSkip(mode)

	for index := 0; index < derivation.StopIndex(mode); index++ {
		if !derivation.SupportsIndex(mode, index) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return discovered, err
		}

		path := derivation.Path(mode, index)
		derived, err := device.DeriveAddress(ctx, path)
		if err != nil {
			return discovered, fmt.Errorf("derive %s: %w", path, err)
		}
		if err := ctx.Err(); err != nil {
			return discovered, err
		}

		account, err := s.reconciler.Reconcile(ctx, ReconcileRequest{
			Currency:       currency,
			Address:        derived.Address,
			DerivationPath: path,
			DerivationMode: string(mode),
			Index:          index,
		})
		if err != nil {
			return discovered, fmt.Errorf("sync %s: %w", derived.Address, err)
		}
		if err := ctx.Err(); err != nil {
			return discovered, err
		}

		if account.Empty() {
			if emptyCount >= skip {
				break
			}
			if mode == derivation.ModeStandard && !emptyEmitted {
				if !emit(ctx, events, account) {
					return discovered, ctx.Err()
				}
				discovered++
				emptyEmitted = true
			}
			emptyCount++
			continue
		}
		emptyCount = 0

		s.logger.Debug("discovered account",
			zap.String("address", derived.Address),
			zap.String("derivation_mode", string(mode)),
			zap.Int("index", index),
			zap.Int("operations", len(account.Operations)))
		if !emit(ctx, events, account) {
			return discovered, ctx.Err()
		}
		discovered++
	}
	return discovered, nil
}

func emit(ctx context.Context, events chan<- ScanEvent, account *model.Account) bool {
	select {
	case events <- ScanEvent{Account: account}:
		return true
	case <-ctx.Done():
		return false
	}
}
