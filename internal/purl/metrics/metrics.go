package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for PURL resolution.
type Metrics struct {
	// Resolutions by family and outcome (see service outcome names)
	Resolutions *prometheus.CounterVec

	// Upstream lookup latencies by operation
	UpstreamLatency *prometheus.HistogramVec

	// Overall resolve latency, upstream calls included
	ResolveLatency prometheus.Histogram
}

// New creates a Metrics instance registered with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "purl_resolutions_total",
			Help: "Total PURL resolutions by family and outcome",
		}, []string{"family", "outcome"}),

		UpstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "purl_upstream_duration_seconds",
			Help:    "Duration of record and multimedia lookups by operation",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"operation"}), // operation: "find_by_unit_id", "find_multimedia"

		ResolveLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "purl_resolve_duration_seconds",
			Help:    "Duration of a full PURL resolution",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// IncrementResolution records a resolution outcome.
func (m *Metrics) IncrementResolution(family, outcome string) {
	if m != nil {
		m.Resolutions.WithLabelValues(family, outcome).Inc()
	}
}

// ObserveUpstreamLatency records the duration of an upstream call.
func (m *Metrics) ObserveUpstreamLatency(operation string, d time.Duration) {
	if m != nil {
		m.UpstreamLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// ObserveResolveLatency records the total resolution duration.
func (m *Metrics) ObserveResolveLatency(d time.Duration) {
	if m != nil {
		m.ResolveLatency.Observe(d.Seconds())
	}
}
