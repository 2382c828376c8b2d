package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncReconcileTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletcore",
		Subsystem: "sync",
		Name:      "reconcile_total",
		Help:      "Count of account reconciliations.",
	}, []string{"currency", "network", "mode", "status"})
	syncReconcileDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletcore",
		Subsystem: "sync",
		Name:      "reconcile_duration_seconds",
		Help:      "Duration of account reconciliations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"currency", "network", "mode", "status"})
)

// Sync tracks metrics for the account reconciliation engine.
type Sync struct {
	currency string
	network  string
}

// NewSync constructs a metrics collector for reconciliations.
func NewSync(currency, network string) *Sync {
	if currency == "" {
		currency = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Sync{currency: currency, network: network}
}

// ObserveReconcile records a single reconciliation outcome and duration.
func (m Sync) ObserveReconcile(err error, incremental bool, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	mode := "full"
	if incremental {
		mode = "incremental"
	}

	syncReconcileTotal.WithLabelValues(m.currency, m.network, mode, status).Inc()
	syncReconcileDuration.WithLabelValues(m.currency, m.network, mode, status).Observe(time.Since(started).Seconds())
}
