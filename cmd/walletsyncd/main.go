package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/PlatONnetwork/wallet-core/internal/clock"
	"github.com/PlatONnetwork/wallet-core/internal/metrics"
	"github.com/PlatONnetwork/wallet-core/internal/model"
	"github.com/PlatONnetwork/wallet-core/internal/platon"
	"github.com/PlatONnetwork/wallet-core/internal/service"
)

type config struct {
	NodeURL           string        `long:"node-url" env:"WALLETSYNC_NODE_URL" description:"PlatON node JSON-RPC URL" default:"http://127.0.0.1:6789"`
	IndexerURL        string        `long:"indexer-url" env:"WALLETSYNC_INDEXER_URL" description:"PlatON scan API base URL" required:"true"`
	Address           string        `long:"address" env:"WALLETSYNC_ADDRESS" description:"account address to keep in sync" required:"true"`
	DerivationPath    string        `long:"derivation-path" env:"WALLETSYNC_DERIVATION_PATH" description:"derivation path of the account" default:"m/44'/486'/0'/0/0"`
	DerivationMode    string        `long:"derivation-mode" env:"WALLETSYNC_DERIVATION_MODE" description:"derivation mode of the account"`
	BlacklistedTokens []string      `long:"blacklisted-token" env:"WALLETSYNC_BLACKLISTED_TOKENS" env-delim:"," description:"token ids excluded from sync"`
	SyncInterval      time.Duration `long:"sync-interval" env:"WALLETSYNC_SYNC_INTERVAL" description:"delay between reconciliations" default:"30s"`
	RequestsPerSec    int           `long:"requests-per-second" env:"WALLETSYNC_REQUESTS_PER_SECOND" description:"outbound request rate limit per backend" default:"10"`
	MetricsListen     string        `long:"metrics-listen" env:"WALLETSYNC_METRICS_LISTEN" description:"listen address for the metrics endpoint" default:":9091"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("wallet sync daemon failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	currency := model.Platon()
	clk := clock.System{}

	node, err := platon.NewNodeClient(ctx, platon.NodeConfig{
		URL:               cfg.NodeURL,
		RequestsPerSecond: cfg.RequestsPerSec,
	}, clk, logger, metrics.NewClient("node", currency.ID, "mainnet"))
	if err != nil {
		return fmt.Errorf("init node client: %w", err)
	}
	defer node.Close()

	indexer, err := platon.NewIndexerClient(platon.IndexerConfig{
		BaseURL:           cfg.IndexerURL,
		RequestsPerSecond: cfg.RequestsPerSec,
	}, logger, metrics.NewClient("indexer", currency.ID, "mainnet"))
	if err != nil {
		return fmt.Errorf("init indexer client: %w", err)
	}

	sync, err := service.NewSyncService(
		node,
		indexer,
		model.NewTokenTable(model.PlatonTokens()),
		clk,
		logger,
		metrics.NewSync(currency.ID, "mainnet"),
		service.DefaultSyncConfig(),
	)
	if err != nil {
		return err
	}

	go serveMetrics(ctx, cfg.MetricsListen, logger)

	var snapshot *model.Account
	for {
		account, err := sync.Reconcile(ctx, service.ReconcileRequest{
			Currency:            currency,
			Address:             cfg.Address,
			DerivationPath:      cfg.DerivationPath,
			DerivationMode:      cfg.DerivationMode,
			Previous:            snapshot,
			BlacklistedTokenIDs: cfg.BlacklistedTokens,
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// Keep the previous snapshot and retry on the next tick.
			logger.Error("reconciliation failed", zap.Error(err))
		} else {
			snapshot = account
			logger.Info("account reconciled",
				zap.String("address", cfg.Address),
				zap.String("balance", account.Balance.String()),
				zap.Uint64("block_height", account.BlockHeight),
				zap.Int("operations", len(account.Operations)),
				zap.Int("token_accounts", len(account.SubAccounts)))
		}

		if err := clk.Sleep(ctx, cfg.SyncInterval); err != nil {
			return err
		}
	}
}

func serveMetrics(ctx context.Context, listen string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: listen, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("metrics endpoint failed", zap.Error(err))
	}
}
