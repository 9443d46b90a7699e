package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values
const (
	StepHighlight = "highlight"
	StepPolish    = "polish"

	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeDegraded = "degraded"
)

var (
	// EmailsGenerated counts GenerateEmail calls by outcome
	EmailsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_generations_total",
			Help: "Total number of email generation requests by outcome",
		},
		[]string{"outcome"},
	)

	// LLMCalls counts model calls by pipeline step and outcome
	LLMCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_llm_calls_total",
			Help: "Total number of model calls by pipeline step and outcome",
		},
		[]string{"step", "outcome"},
	)

	// LLMCallDuration observes model call latency by pipeline step
	LLMCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "email_llm_call_duration_seconds",
			Help:    "Duration of model calls in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"step"},
	)

	// HTTPRequests counts HTTP requests by matched route and status code
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		},
		[]string{"route", "code"},
	)
)
