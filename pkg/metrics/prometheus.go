package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	upstreamFetches *prometheus.CounterVec
	cacheEvents     *prometheus.CounterVec
	annualRate      *prometheus.GaugeVec
	refreshDuration prometheus.Histogram
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		upstreamFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rendafixa_upstream_fetches_total",
				Help: "Total number of SGS series fetches by outcome",
			},
			[]string{"series", "outcome"},
		),
		cacheEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rendafixa_cache_events_total",
				Help: "Indicator cache events (hit, miss, stale, refresh_error, invalidate)",
			},
			[]string{"event"},
		),
		annualRate: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rendafixa_annual_rate_percent",
				Help: "Last aggregated annual rate per indicator",
			},
			[]string{"indicator"},
		),
		refreshDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rendafixa_refresh_duration_seconds",
				Help:    "Duration of full indicator refreshes in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// RecordFetch records one upstream series fetch.
func (r *Recorder) RecordFetch(series string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	r.upstreamFetches.WithLabelValues(series, outcome).Inc()
}

// RecordCacheEvent records an indicator cache event.
func (r *Recorder) RecordCacheEvent(event string) {
	r.cacheEvents.WithLabelValues(event).Inc()
}

// RecordAnnualRate records the last aggregated rate for an indicator.
func (r *Recorder) RecordAnnualRate(indicator string, rate float64) {
	r.annualRate.WithLabelValues(indicator).Set(rate)
}

// RecordRefreshDuration records a full refresh duration in seconds.
func (r *Recorder) RecordRefreshDuration(seconds float64) {
	r.refreshDuration.Observe(seconds)
}
