package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Gemini adapter metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gemini",
			Subsystem: "adapter",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status", "model", "stream"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gemini",
			Subsystem: "adapter",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Model discovery attempts by outcome
	DiscoveryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gemini",
			Subsystem: "adapter",
			Name:      "model_discovery_total",
			Help:      "Model discovery attempts by outcome",
		},
		[]string{"outcome"},
	)

	// Catalog requests served from the static fallback
	CatalogFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gemini",
			Subsystem: "adapter",
			Name:      "catalog_fallback_total",
			Help:      "Catalog requests answered with the static fallback",
		},
	)

	// Catalog requests served from the cache
	CatalogCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gemini",
			Subsystem: "adapter",
			Name:      "catalog_cache_hits_total",
			Help:      "Catalog requests answered from the in-memory cache",
		},
	)

	// Upstream completion duration
	CompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gemini",
			Subsystem: "adapter",
			Name:      "completion_duration_seconds",
			Help:      "Upstream chat completion duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"model", "stream"},
	)

	// Active streaming connections gauge
	ActiveStreams = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "gemini",
			Subsystem: "adapter",
			Name:      "active_streams",
			Help:      "Currently active streaming connections",
		},
		[]string{"model"},
	)
)

// Discovery outcome labels.
const (
	OutcomeSuccess           = "success"
	OutcomeMissingCredential = "missing_credential"
	OutcomeTransportFailure  = "transport_failure"
	OutcomeMalformedResponse = "malformed_response"
	OutcomeEmptyAfterFilter  = "empty_after_filter"
)

// RecordRequest records an HTTP request with all relevant labels
func RecordRequest(method, endpoint, status, model string, stream bool, durationSec float64) {
	streamStr := "false"
	if stream {
		streamStr = "true"
	}
	RequestsTotal.WithLabelValues(method, endpoint, status, model, streamStr).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordDiscovery records a model discovery attempt outcome
func RecordDiscovery(outcome string) {
	DiscoveryTotal.WithLabelValues(outcome).Inc()
}

// RecordCompletionDuration records the duration of an upstream completion call
func RecordCompletionDuration(model string, stream bool, durationSec float64) {
	streamStr := "false"
	if stream {
		streamStr = "true"
	}
	CompletionDuration.WithLabelValues(model, streamStr).Observe(durationSec)
}

// IncrementActiveStreams increments the active streams gauge
func IncrementActiveStreams(model string) {
	ActiveStreams.WithLabelValues(model).Inc()
}

// DecrementActiveStreams decrements the active streams gauge
func DecrementActiveStreams(model string) {
	ActiveStreams.WithLabelValues(model).Dec()
}
