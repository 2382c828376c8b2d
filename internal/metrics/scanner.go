package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scanTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletcore",
		Subsystem: "scanner",
		Name:      "scans_total",
		Help:      "Count of derivation space scans.",
	}, []string{"currency", "network", "status"})
	scanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletcore",
		Subsystem: "scanner",
		Name:      "scan_duration_seconds",
		Help:      "Duration of derivation space scans.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12), // 0.1s..~3.5min
	}, []string{"currency", "network", "status"})
	scanDiscoveredAccounts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletcore",
		Subsystem: "scanner",
		Name:      "discovered_accounts",
		Help:      "Number of accounts discovered per scan.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1..128
	}, []string{"currency", "network"})
)

// Scanner tracks metrics for account discovery scans.
type Scanner struct {
	currency string
	network  string
}

// NewScanner constructs a metrics collector for scans.
func NewScanner(currency, network string) *Scanner {
	if currency == "" {
		currency = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Scanner{currency: currency, network: network}
}

// ObserveScan records a single scan outcome, size and duration.
func (m Scanner) ObserveScan(err error, discovered int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	scanTotal.WithLabelValues(m.currency, m.network, status).Inc()
	scanDuration.WithLabelValues(m.currency, m.network, status).Observe(time.Since(started).Seconds())
	scanDiscoveredAccounts.WithLabelValues(m.currency, m.network).Observe(float64(discovered))
}
