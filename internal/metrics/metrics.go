package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Form submissions
	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "player_form_submissions_total",
			Help: "Player form submissions by mode and outcome",
		},
		[]string{"mode", "outcome"}, // create|edit, ok|invalid|error
	)
	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "player_form_validation_failures_total",
			Help: "Rejected field values by field",
		},
		[]string{"field"},
	)

	AuditWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_write_failures_total",
			Help: "Audit log entries that could not be stored",
		},
	)

	// Worker queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)

	initOnce sync.Once
)

// Handler serves /metrics.
var Handler = promhttp.Handler

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(SubmissionsTotal)
		prometheus.MustRegister(ValidationFailures)
		prometheus.MustRegister(AuditWriteFailures)
		prometheus.MustRegister(WorkerQueueDepth)
	})
}
