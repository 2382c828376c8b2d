package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletcore",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Count of outbound node and indexer requests.",
	}, []string{"backend", "method", "currency", "network", "status"})
	clientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletcore",
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Duration of outbound node and indexer requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"backend", "method", "currency", "network", "status"})
)

// Client tracks metrics for one outbound backend (node or indexer).
type Client struct {
	backend  string
	currency string
	network  string
}

// NewClient constructs a metrics collector for outbound requests.
func NewClient(backend, currency, network string) *Client {
	if backend == "" {
		backend = "unknown"
	}
	if currency == "" {
		currency = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Client{backend: backend, currency: currency, network: network}
}

// ObserveRequest records a single outbound request outcome and duration.
func (m Client) ObserveRequest(err error, method string, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	clientRequestsTotal.WithLabelValues(m.backend, method, m.currency, m.network, status).Inc()
	clientRequestDuration.WithLabelValues(m.backend, method, m.currency, m.network, status).Observe(time.Since(started).Seconds())
}
