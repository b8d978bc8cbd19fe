package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Quill widget service metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quill",
			Subsystem: "chat",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Chat turns
	TurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quill",
			Subsystem: "chat",
			Name:      "turns_total",
			Help:      "Total chat turns processed",
		},
		[]string{"model", "outcome"},
	)

	// Completion failures absorbed into transcripts
	CompletionErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "quill",
			Subsystem: "chat",
			Name:      "completion_errors_total",
			Help:      "Total completion capability failures",
		},
	)

	// Sessions
	SessionsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "quill",
			Subsystem: "chat",
			Name:      "sessions_created_total",
			Help:      "Total chat sessions created",
		},
	)

	SessionsEvictedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "quill",
			Subsystem: "chat",
			Name:      "sessions_evicted_total",
			Help:      "Total idle sessions evicted",
		},
	)

	SessionsLive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "quill",
			Subsystem: "chat",
			Name:      "sessions_live",
			Help:      "Currently live chat sessions",
		},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "quill",
			Subsystem: "chat",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Completion round-trip duration
	CompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "quill",
			Subsystem: "chat",
			Name:      "completion_duration_seconds",
			Help:      "Chat completion round-trip duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"model"},
	)
)

// RecordRequest records a completed HTTP request.
func RecordRequest(method, endpoint, status string, duration float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(duration)
}

// RecordTurn records a completed chat turn.
func RecordTurn(model string, failed bool, duration float64) {
	outcome := "ok"
	if failed {
		outcome = "error"
		CompletionErrorsTotal.Inc()
	}
	TurnsTotal.WithLabelValues(model, outcome).Inc()
	CompletionDuration.WithLabelValues(model).Observe(duration)
}
