package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration is observed by the gin metrics middleware
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)

	PlansGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onboarding_plans_generated_total",
			Help: "Total number of onboarding plans generated",
		},
		[]string{"source", "fallback"},
	)

	// PlanSourceFallbacks counts plans served by the secondary source
	PlanSourceFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onboarding_plan_source_fallbacks_total",
			Help: "Total number of plan generations that fell back to the secondary source",
		},
		[]string{"reason"},
	)

	TaskStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onboarding_task_status_changes_total",
			Help: "Total number of task status changes",
		},
		[]string{"status"},
	)

	PlanConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "onboarding_plan_conflicts_total",
			Help: "Total number of plan writes rejected for a stale version",
		},
	)

	RemoteGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "onboarding_remote_generation_seconds",
			Help:    "Remote plan generation latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"outcome"},
	)
)

// RecordHTTPRequestDuration observes one served request
func RecordHTTPRequestDuration(method, path string, status int, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}

// IncrementPlansGenerated counts a generated plan by source
func IncrementPlansGenerated(source string, fallback bool) {
	PlansGenerated.WithLabelValues(source, strconv.FormatBool(fallback)).Inc()
}

// IncrementPlanSourceFallback counts a fallback with a short reason label
func IncrementPlanSourceFallback(reason string) {
	PlanSourceFallbacks.WithLabelValues(reason).Inc()
}

// IncrementTaskStatusChange counts a task moving to status
func IncrementTaskStatusChange(status string) {
	TaskStatusChanges.WithLabelValues(status).Inc()
}

// IncrementPlanConflict counts a rejected stale write
func IncrementPlanConflict() {
	PlanConflicts.Inc()
}

// RecordRemoteGeneration observes a remote generator call. Outcome is one of
// success, cached, error or invalid.
func RecordRemoteGeneration(outcome string, duration time.Duration) {
	RemoteGenerationDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}
