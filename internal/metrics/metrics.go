package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Generation metrics
	GenerationRequestsTotal   *prometheus.CounterVec
	GenerationDurationSeconds *prometheus.HistogramVec
	ImageFallbackTotal        *prometheus.CounterVec

	// Cache metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Singleflight metrics
	SingleflightDedupTotal *prometheus.CounterVec

	// Rate limiter metrics
	RateLimiterDropped *prometheus.CounterVec

	// Form export metrics
	FormExportsTotal *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		GenerationRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "courseplanner_generation_requests_total",
				Help: "Total number of generation calls by kind and status",
			},
			[]string{"kind", "status"}, // kind: text, class_names, curriculum, promotion, image; status: success, error, parse_error
		),

		GenerationDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "courseplanner_generation_duration_seconds",
				Help:    "Generation call duration in seconds by kind",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
			},
			[]string{"kind"},
		),

		ImageFallbackTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "courseplanner_image_fallback_total",
				Help: "Total number of infographics served as placeholders by reason",
			},
			[]string{"reason"}, // reason: config, transient, no_data, disabled
		),

		CacheHitsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "courseplanner_cache_hits_total",
				Help: "Total number of cache hits by module",
			},
			[]string{"module"},
		),

		CacheMissesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "courseplanner_cache_misses_total",
				Help: "Total number of cache misses by module",
			},
			[]string{"module"},
		),

		SingleflightDedupTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "courseplanner_singleflight_dedup_total",
				Help: "Total number of deduplicated requests (requests that waited instead of executing)",
			},
			[]string{"module"},
		),

		RateLimiterDropped: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "courseplanner_rate_limiter_dropped_total",
				Help: "Total number of requests dropped by rate limiter",
			},
			[]string{"limiter_type"},
		),

		FormExportsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "courseplanner_form_exports_total",
				Help: "Total number of Google Forms exports by status",
			},
			[]string{"status"},
		),
	}
}

// RecordGeneration records a generation call with status
func (m *Metrics) RecordGeneration(kind, status string, duration float64) {
	if m == nil {
		return
	}
	m.GenerationRequestsTotal.WithLabelValues(kind, status).Inc()
	m.GenerationDurationSeconds.WithLabelValues(kind).Observe(duration)
}

// RecordImageFallback records an infographic that degraded to a placeholder
func (m *Metrics) RecordImageFallback(reason string) {
	if m == nil {
		return
	}
	m.ImageFallbackTotal.WithLabelValues(reason).Inc()
}

// RecordCacheHit records a cache hit
func (m *Metrics) RecordCacheHit(module string) {
	if m == nil {
		return
	}
	m.CacheHitsTotal.WithLabelValues(module).Inc()
}

// RecordCacheMiss records a cache miss
func (m *Metrics) RecordCacheMiss(module string) {
	if m == nil {
		return
	}
	m.CacheMissesTotal.WithLabelValues(module).Inc()
}

// RecordSingleflightDedup records a deduplicated request
func (m *Metrics) RecordSingleflightDedup(module string) {
	if m == nil {
		return
	}
	m.SingleflightDedupTotal.WithLabelValues(module).Inc()
}

// RecordRateLimiterDrop records a request dropped by rate limiter
func (m *Metrics) RecordRateLimiterDrop(limiterType string) {
	if m == nil {
		return
	}
	m.RateLimiterDropped.WithLabelValues(limiterType).Inc()
}

// RecordFormExport records a Forms export attempt
func (m *Metrics) RecordFormExport(status string) {
	if m == nil {
		return
	}
	m.FormExportsTotal.WithLabelValues(status).Inc()
}
