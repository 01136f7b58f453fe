package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the analytics collectors
type Metrics struct {
	Computations   *prometheus.CounterVec
	RecordsScanned prometheus.Counter
	ComputeSeconds prometheus.Histogram
	Stale          prometheus.Counter
}

// NewMetrics registers the analytics collectors on reg, nil means the default registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Computations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hidegrade",
			Subsystem: "analytics",
			Name:      "computations_total",
			Help:      "Summary refreshes by outcome (published, stale, failed)",
		}, []string{"outcome"}),
		RecordsScanned: f.NewCounter(prometheus.CounterOpts{
			Namespace: "hidegrade",
			Subsystem: "analytics",
			Name:      "records_scanned_total",
			Help:      "Records handed to the engine",
		}),
		ComputeSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hidegrade",
			Subsystem: "analytics",
			Name:      "compute_duration_seconds",
			Help:      "Engine time per refresh, fetch excluded",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		Stale: f.NewCounter(prometheus.CounterOpts{
			Namespace: "hidegrade",
			Subsystem: "analytics",
			Name:      "stale_discards_total",
			Help:      "Refreshes that finished after a newer one had published",
		}),
	}
}
