// Package metrics exposes Prometheus counters for the intake and
// dashboard surfaces.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "laundry",
			Name:      "submissions_total",
			Help:      "Count of accepted form submissions by entity.",
		},
		[]string{"entity"},
	)

	validationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "laundry",
			Name:      "validation_failures_total",
			Help:      "Count of submissions rejected by form validation.",
		},
		[]string{"entity"},
	)

	gatewayErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "laundry",
			Name:      "gateway_errors_total",
			Help:      "Count of failed calls to the remote record gateway.",
		},
	)

	filesRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "laundry",
			Name:      "files_rejected_total",
			Help:      "Count of attachment files dropped by the MIME gate.",
		},
	)

	dashboardRefreshes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "laundry",
			Name:      "dashboard_refreshes_total",
			Help:      "Count of dashboard stat recomputations.",
		},
	)
)

// Register registers all collectors (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(submissions, validationFailures, gatewayErrors,
			filesRejected, dashboardRefreshes)
	})
}

func IncSubmission(entity string)        { submissions.WithLabelValues(entity).Inc() }
func IncValidationFailure(entity string) { validationFailures.WithLabelValues(entity).Inc() }
func IncGatewayError()                   { gatewayErrors.Inc() }
func AddFilesRejected(n int)             { filesRejected.Add(float64(n)) }
func IncDashboardRefresh()               { dashboardRefreshes.Inc() }
