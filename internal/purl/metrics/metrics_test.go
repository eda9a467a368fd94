package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncrementResolution("naturalis", "redirect")
	m.IncrementResolution("naturalis", "redirect")
	m.IncrementResolution("waarneming", "not_found")
	m.ObserveUpstreamLatency("find_by_unit_id", 20*time.Millisecond)
	m.ObserveResolveLatency(30 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Resolutions.WithLabelValues("naturalis", "redirect")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resolutions.WithLabelValues("waarneming", "not_found")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.UpstreamLatency))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ResolveLatency))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementResolution("naturalis", "inline")
		m.ObserveUpstreamLatency("find_multimedia", time.Second)
		m.ObserveResolveLatency(time.Second)
	})
}
