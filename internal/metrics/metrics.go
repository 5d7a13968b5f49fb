package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
// All methods are nil-safe so callers can run without metrics wired.
type Metrics struct {
	// Lookup completions by service type and terminal status
	LookupOutcome *prometheus.CounterVec

	// Challenge lifecycle counters
	ChallengesCreated prometheus.Counter
	ChallengesSolved  prometheus.Counter

	// Ledger appends that failed and surfaced as errors
	AuditAppendFailures prometheus.Counter

	// HTTP request latency by method and route
	HTTPDuration *prometheus.HistogramVec
}

// New creates and registers all application metrics.
func New() *Metrics {
	return &Metrics{
		LookupOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "taxhub_lookup_outcomes_total",
			Help: "Total completed service requests by service type and status",
		}, []string{"service_type", "status"}),

		ChallengesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "taxhub_challenges_created_total",
			Help: "Total captcha challenges raised for human solvers",
		}),

		ChallengesSolved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "taxhub_challenges_solved_total",
			Help: "Total captcha challenges resolved with a solution token",
		}),

		AuditAppendFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "taxhub_audit_append_failures_total",
			Help: "Total audit ledger appends that failed",
		}),

		HTTPDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "taxhub_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method, route and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),
	}
}

// IncrementLookupOutcome records a completed service request.
func (m *Metrics) IncrementLookupOutcome(serviceType, status string) {
	if m != nil {
		m.LookupOutcome.WithLabelValues(serviceType, status).Inc()
	}
}

// IncrementChallengesCreated records a raised challenge.
func (m *Metrics) IncrementChallengesCreated() {
	if m != nil {
		m.ChallengesCreated.Inc()
	}
}

// IncrementChallengesSolved records a solved challenge.
func (m *Metrics) IncrementChallengesSolved() {
	if m != nil {
		m.ChallengesSolved.Inc()
	}
}

// IncrementAuditAppendFailures records a failed ledger append.
func (m *Metrics) IncrementAuditAppendFailures() {
	if m != nil {
		m.AuditAppendFailures.Inc()
	}
}

// ObserveHTTPDuration records the latency of one HTTP request.
func (m *Metrics) ObserveHTTPDuration(method, route, status string, d time.Duration) {
	if m != nil {
		m.HTTPDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
	}
}
