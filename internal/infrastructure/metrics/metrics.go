package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Poster-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "poster",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "poster",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	// Poster operations by outcome
	PosterOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "poster",
			Subsystem: "api",
			Name:      "poster_operations_total",
			Help:      "Total poster store operations",
		},
		[]string{"operation", "status"},
	)

	// Store round trip duration
	StoreDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "poster",
			Subsystem: "api",
			Name:      "store_duration_seconds",
			Help:      "Record store operation duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"backend", "operation"},
	)

	// Date extractions by outcome
	DateExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "poster",
			Subsystem: "api",
			Name:      "date_extractions_total",
			Help:      "Total date extraction attempts",
		},
		[]string{"outcome"},
	)

	// Vision model call duration
	ModelCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "poster",
			Subsystem: "api",
			Name:      "model_call_duration_seconds",
			Help:      "Vision model call duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"model", "status"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordPosterOperation records the outcome of a poster operation
func RecordPosterOperation(operation, status string) {
	PosterOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordStoreOperation records a record store round trip
func RecordStoreOperation(backend, operation string, durationSec float64) {
	StoreDuration.WithLabelValues(backend, operation).Observe(durationSec)
}

// RecordDateExtraction records an extraction outcome ("extracted", "no_date", "failed")
func RecordDateExtraction(outcome string) {
	DateExtractionsTotal.WithLabelValues(outcome).Inc()
}

// RecordModelCall records a vision model call
func RecordModelCall(model, status string, durationSec float64) {
	ModelCallDuration.WithLabelValues(model, status).Observe(durationSec)
}
