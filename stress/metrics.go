package stress

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports scenario results to Prometheus. A nil *Metrics records
// nothing.
type Metrics struct {
	ops      *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "atomicstress",
			Name:      "operations_total",
			Help:      "Atomic operations performed, by scenario.",
		}, []string{"scenario"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "atomicstress",
			Name:      "failures_total",
			Help:      "Scenario runs that violated their property.",
		}, []string{"scenario"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "atomicstress",
			Name:      "run_duration_seconds",
			Help:      "Wall time of one scenario run.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"scenario"}),
	}
	reg.MustRegister(m.ops, m.failures, m.duration)
	return m
}

// Start implements Observer.
func (m *Metrics) Start(string, Config) {}

// Done implements Observer and records r.
func (m *Metrics) Done(r Report) {
	if m == nil {
		return
	}
	m.ops.WithLabelValues(r.Scenario).Add(float64(r.Ops))
	m.duration.WithLabelValues(r.Scenario).Observe(r.Elapsed.Seconds())
	if r.Err != nil {
		m.failures.WithLabelValues(r.Scenario).Inc()
	}
}
