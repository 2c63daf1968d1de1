package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Pipeline metrics
	PipelineRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hermes_pipeline_runs_total",
			Help: "Total number of pipeline executions",
		},
		[]string{"pipeline", "status"}, // status: success|error
	)

	PipelineDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hermes_pipeline_duration_seconds",
			Help:    "Pipeline execution duration in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"pipeline"},
	)

	// Agent metrics
	AgentCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hermes_agent_calls_total",
			Help: "Total number of agent transform calls",
		},
		[]string{"agent", "model", "status"}, // status: success|error
	)

	AgentLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hermes_agent_latency_seconds",
			Help:    "Agent transform latency in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"agent", "model"},
	)

	AgentTokens = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hermes_agent_tokens_total",
			Help: "Total tokens used by agents",
		},
		[]string{"agent", "model", "type"}, // type: input|output
	)

	// Search backend metrics
	SearchRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hermes_search_requests_total",
			Help: "Total number of search backend requests",
		},
		[]string{"status"}, // status: success|error
	)

	// HTTP metrics
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hermes_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "status"},
	)
)

// Register registers all metrics with the default prometheus registry.
// Safe to call once at startup.
func Register() {
	prometheus.MustRegister(
		PipelineRuns,
		PipelineDuration,
		AgentCalls,
		AgentLatency,
		AgentTokens,
		SearchRequests,
		HTTPRequests,
	)
}

// Handler returns the HTTP handler for the /metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
