package platon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/PlatONnetwork/wallet-core/internal/model"
)

const transactionListPath = "/browser-server/transaction/transactionListByAddress"

// responseCodeOK is the scan API's success code.
const responseCodeOK = 0

// IndexerClient fetches address history from a PlatON scan instance.
type IndexerClient struct {
	baseURL string
	http    *http.Client
	limiter ratelimit.Limiter
	logger  *zap.Logger
	metrics Metrics
}

// IndexerConfig configures the scan client.
type IndexerConfig struct {
	BaseURL string
	Timeout time.Duration
	// RequestsPerSecond throttles outbound calls. Zero disables throttling.
	RequestsPerSecond int
}

// NewIndexerClient builds the scan history client.
func NewIndexerClient(cfg IndexerConfig, logger *zap.Logger, metrics Metrics) (*IndexerClient, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("indexer client: empty base url")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		limiter = ratelimit.New(cfg.RequestsPerSecond)
	}
	return &IndexerClient{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Transactions returns one page of address history, most recent first. A
// non-empty cursor resumes the walk from the given block hash.
func (c *IndexerClient) Transactions(ctx context.Context, address, blockHashCursor string, pageSize int) (page *model.TransactionPage, err error) {
	started := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.ObserveRequest(err, "transactionListByAddress", started)
		}
	}()
	c.limiter.Take()

	body, err := json.Marshal(transactionListRequest{
		PageNo:    1,
		PageSize:  pageSize,
		Address:   address,
		BlockHash: blockHashCursor,
	})
	if err != nil {
		return nil, fmt.Errorf("encode history request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+transactionListPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build history request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch history for %s: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("fetch history for %s: unexpected status %d", address, resp.StatusCode)
	}

	var decoded transactionListResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode history response: %w", err)
	}
	if decoded.Code != responseCodeOK {
		return nil, fmt.Errorf("fetch history for %s: indexer error %d: %s", address, decoded.Code, decoded.Message)
	}

	items := make([]*model.IndexerTransaction, 0, len(decoded.Data))
	for _, raw := range decoded.Data {
		tx, err := convertTransaction(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, tx)
	}
	c.logger.Debug("fetched history page",
		zap.String("address", address),
		zap.Int("transactions", len(items)),
		zap.Int("total", decoded.TotalCount))

	return &model.TransactionPage{
		Items:     items,
		Truncated: decoded.TotalCount > len(items),
	}, nil
}
