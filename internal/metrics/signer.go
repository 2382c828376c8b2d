package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	signTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletcore",
		Subsystem: "signer",
		Name:      "signatures_total",
		Help:      "Count of signing workflows.",
	}, []string{"currency", "network", "status"})
	signDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletcore",
		Subsystem: "signer",
		Name:      "signature_duration_seconds",
		Help:      "Duration of signing workflows, device interaction included.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10), // 0.1s..~51s
	}, []string{"currency", "network", "status"})
)

// Signer tracks metrics for device signing workflows.
type Signer struct {
	currency string
	network  string
}

// NewSigner constructs a metrics collector for signing workflows.
func NewSigner(currency, network string) *Signer {
	if currency == "" {
		currency = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Signer{currency: currency, network: network}
}

// ObserveSign records a single signing workflow outcome and duration.
func (m Signer) ObserveSign(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	signTotal.WithLabelValues(m.currency, m.network, status).Inc()
	signDuration.WithLabelValues(m.currency, m.network, status).Observe(time.Since(started).Seconds())
}
