package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "site_agent"
	subsystem = "api"
)

// Site agent metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 240},
		},
		[]string{"method", "endpoint"},
	)

	// LLM call counters
	LLMCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "llm_calls_total",
			Help:      "Total LLM completions requested",
		},
		[]string{"provider", "status"},
	)

	// LLM duration histogram
	LLMCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "llm_call_duration_seconds",
			Help:      "LLM completion latency in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 240},
		},
		[]string{"provider"},
	)

	// Files written to disk
	FilesMaterializedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "files_materialized_total",
			Help:      "Total generated files written to disk",
		},
		[]string{"flow"},
	)

	// Conversation store operations
	ConversationOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "conversation_operations_total",
			Help:      "Total conversation store operations",
		},
		[]string{"operation", "status"},
	)

	// Version control snapshots
	CommitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "commits_total",
			Help:      "Total snapshot commits attempted",
		},
		[]string{"status"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordLLMCall records a completion request against a provider
func RecordLLMCall(provider, status string, durationSec float64) {
	LLMCallsTotal.WithLabelValues(provider, status).Inc()
	LLMCallDuration.WithLabelValues(provider).Observe(durationSec)
}

// RecordFilesMaterialized adds count written files for a flow (chat or generate)
func RecordFilesMaterialized(flow string, count int) {
	if count <= 0 {
		return
	}
	FilesMaterializedTotal.WithLabelValues(flow).Add(float64(count))
}

// RecordConversationOp records a conversation store operation
func RecordConversationOp(operation, status string) {
	ConversationOpsTotal.WithLabelValues(operation, status).Inc()
}

// RecordCommit records a snapshot commit attempt
func RecordCommit(status string) {
	CommitsTotal.WithLabelValues(status).Inc()
}

// StatusLabel maps an error to the "success"/"error" label value.
func StatusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
