package platon

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/PlatONnetwork/wallet-core/internal/clock"
	"github.com/PlatONnetwork/wallet-core/internal/model"
	"github.com/PlatONnetwork/wallet-core/pkg/safe"
	"github.com/PlatONnetwork/wallet-core/pkg/workerpool"
)

// balanceOfSelector is the 4-byte id of balanceOf(address).
var balanceOfSelector = []byte{0x70, 0xa0, 0x82, 0x31}

const (
	feeQuoteTTL    = 30 * time.Second
	blockHeightTTL = 5 * time.Second
)

// NodeConfig configures the JSON-RPC client.
type NodeConfig struct {
	URL string
	// RequestsPerSecond throttles outbound calls. Zero disables throttling.
	RequestsPerSecond int
	// TokenBalanceWorkers bounds the balanceOf fan-out concurrency.
	TokenBalanceWorkers int
}

// NodeClient talks JSON-RPC to a PlatON node. Fee quotes and the chain
// height are cached briefly so that staging and sync loops do not hammer
// the node.
type NodeClient struct {
	rpc     *rpc.Client
	limiter ratelimit.Limiter
	clk     clock.Clock
	logger  *zap.Logger
	metrics Metrics
	workers int

	mu             sync.Mutex
	feeQuote       *model.FeeQuote
	feeQuoteAt     time.Time
	blockHeight    uint64
	blockHeightAt  time.Time
	heightCacheSet bool
}

// NewNodeClient dials the node and builds the client.
func NewNodeClient(ctx context.Context, cfg NodeConfig, clk clock.Clock, logger *zap.Logger, metrics Metrics) (*NodeClient, error) {
	if cfg.URL == "" {
		return nil, errors.New("node client: empty url")
	}
	client, err := rpc.DialContext(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial node %s: %w", cfg.URL, err)
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		limiter = ratelimit.New(cfg.RequestsPerSecond)
	}
	if cfg.TokenBalanceWorkers <= 0 {
		cfg.TokenBalanceWorkers = 4
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &NodeClient{
		rpc:     client,
		limiter: limiter,
		clk:     clk,
		logger:  logger,
		metrics: metrics,
		workers: cfg.TokenBalanceWorkers,
	}, nil
}

// Close releases the underlying RPC connection.
func (c *NodeClient) Close() {
	c.rpc.Close()
}

func (c *NodeClient) call(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	started := time.Now()
	c.limiter.Take()
	err := c.rpc.CallContext(ctx, result, method, args...)
	if c.metrics != nil {
		c.metrics.ObserveRequest(err, method, started)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// Balance returns the native balance in von.
func (c *NodeClient) Balance(ctx context.Context, address string) (*big.Int, error) {
	var raw string
	if err := c.call(ctx, &raw, "platon_getBalance", address, "latest"); err != nil {
		return nil, err
	}
	return safe.BigQuantity(raw)
}

// Nonce returns the next transaction sequence number for an address,
// pending transactions included.
func (c *NodeClient) Nonce(ctx context.Context, address string) (uint64, error) {
	var raw string
	if err := c.call(ctx, &raw, "platon_getTransactionCount", address, "pending"); err != nil {
		return 0, err
	}
	return safe.HexQuantity(raw)
}

// BlockHeight returns the current chain height, cached for a few seconds.
func (c *NodeClient) BlockHeight(ctx context.Context) (uint64, error) {
	c.mu.Lock()
	if c.heightCacheSet && c.clk.Now().Sub(c.blockHeightAt) < blockHeightTTL {
		height := c.blockHeight
		c.mu.Unlock()
		return height, nil
	}
	c.mu.Unlock()

	var raw string
	if err := c.call(ctx, &raw, "platon_blockNumber"); err != nil {
		return 0, err
	}
	height, err := safe.HexQuantity(raw)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.blockHeight = height
	c.blockHeightAt = c.clk.Now()
	c.heightCacheSet = true
	c.mu.Unlock()
	return height, nil
}

// FeeQuote derives a three-tier quote from the node's gas price, cached for
// thirty seconds.
func (c *NodeClient) FeeQuote(ctx context.Context) (*model.FeeQuote, error) {
	c.mu.Lock()
	if c.feeQuote != nil && c.clk.Now().Sub(c.feeQuoteAt) < feeQuoteTTL {
		quote := c.feeQuote
		c.mu.Unlock()
		return quote, nil
	}
	c.mu.Unlock()

	var raw string
	if err := c.call(ctx, &raw, "platon_gasPrice"); err != nil {
		return nil, err
	}
	price, err := safe.BigQuantity(raw)
	if err != nil {
		return nil, err
	}

	quote := &model.FeeQuote{
		Low:    new(big.Int).Div(new(big.Int).Mul(price, big.NewInt(3)), big.NewInt(4)),
		Medium: price,
		High:   new(big.Int).Div(new(big.Int).Mul(price, big.NewInt(5)), big.NewInt(4)),
	}

	c.mu.Lock()
	c.feeQuote = quote
	c.feeQuoteAt = c.clk.Now()
	c.mu.Unlock()
	return quote, nil
}

// EstimateGasLimit dry-runs the transaction against the latest state.
func (c *NodeClient) EstimateGasLimit(ctx context.Context, req model.GasLimitRequest) (*big.Int, error) {
	args := map[string]interface{}{
		"from": req.From,
		"to":   req.To,
	}
	if req.Value != nil && req.Value.Sign() > 0 {
		args["value"] = hexutil.EncodeBig(req.Value)
	}
	if len(req.Data) > 0 {
		args["data"] = hexutil.Encode(req.Data)
	}
	if req.GasPrice != nil {
		args["gasPrice"] = hexutil.EncodeBig(req.GasPrice)
	}
	var raw string
	if err := c.call(ctx, &raw, "platon_estimateGas", args); err != nil {
		return nil, err
	}
	return safe.BigQuantity(raw)
}

// TokenBalances resolves balanceOf for each contract concurrently. A
// contract whose call fails is omitted from the result rather than
// failing the batch, so a single broken token cannot block a sync.
func (c *NodeClient) TokenBalances(ctx context.Context, address string, contracts []string) (map[string]*big.Int, error) {
	var mu sync.Mutex
	balances := make(map[string]*big.Int, len(contracts))

	err := workerpool.Process(ctx, c.workers, contracts, func(ctx context.Context, contract string) error {
		balance, err := c.tokenBalance(ctx, address, contract)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Warn("token balance call failed",
				zap.String("contract", contract),
				zap.Error(err))
			return nil
		}
		mu.Lock()
		balances[strings.ToLower(contract)] = balance
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return balances, nil
}

func (c *NodeClient) tokenBalance(ctx context.Context, address, contract string) (*big.Int, error) {
	data := make([]byte, 0, 4+32)
	data = append(data, balanceOfSelector...)
	data = append(data, common.LeftPadBytes(common.HexToAddress(address).Bytes(), 32)...)

	var raw string
	err := c.call(ctx, &raw, "platon_call", map[string]interface{}{
		"to":   contract,
		"data": hexutil.Encode(data),
	}, "latest")
	if err != nil {
		return nil, err
	}
	decoded, err := hex.DecodeString(strings.TrimPrefix(raw, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decode balanceOf result %q: %w", raw, err)
	}
	return new(big.Int).SetBytes(decoded), nil
}

// SendRawTransaction broadcasts a signed transaction and returns its hash.
func (c *NodeClient) SendRawTransaction(ctx context.Context, payload []byte) (string, error) {
	var hash string
	if err := c.call(ctx, &hash, "platon_sendRawTransaction", hexutil.Encode(payload)); err != nil {
		return "", err
	}
	return hash, nil
}
