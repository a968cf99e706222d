package counting

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks counting activity.
//
// Metrics:
//   - tokenmaster_counts_total: counts served, by model and source
//   - tokenmaster_fallbacks_total: remote failures degraded to the estimate, by model and reason
//   - tokenmaster_remote_duration_seconds: authoritative call latency, by backend
//   - tokenmaster_cache_evictions_total: remote counts evicted from the cache
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	counts    *prometheus.CounterVec
	fallbacks *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	evictions prometheus.Counter
}

// NewMetrics creates and registers counting metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		counts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tokenmaster",
				Name:      "counts_total",
				Help:      "Total token counts served",
			},
			[]string{"model", "source"},
		),
		fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tokenmaster",
				Name:      "fallbacks_total",
				Help:      "Total authoritative counts replaced by the estimate",
			},
			[]string{"model", "reason"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "tokenmaster",
				Name:      "remote_duration_seconds",
				Help:      "Duration of authoritative count calls",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"backend"},
		),
		evictions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "tokenmaster",
				Name:      "cache_evictions_total",
				Help:      "Total remote counts evicted from the cache",
			},
		),
	}

	reg.MustRegister(m.counts, m.fallbacks, m.latency, m.evictions)
	return m
}

func (m *Metrics) recordCount(model string, source Source) {
	if m == nil {
		return
	}
	m.counts.WithLabelValues(model, string(source)).Inc()
}

func (m *Metrics) recordFallback(model, reason string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(model, reason).Inc()
}

func (m *Metrics) recordLatency(backend string, d time.Duration) {
	if m == nil {
		return
	}
	m.latency.WithLabelValues(backend).Observe(d.Seconds())
}

func (m *Metrics) recordEviction() {
	if m == nil {
		return
	}
	m.evictions.Inc()
}
