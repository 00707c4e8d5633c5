package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreOperationsTotal counts store operations.
	// Labels: entity (meeting/action), operation (create/list/...), outcome (ok/validation/not_found/integrity/error)
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_store_operations_total",
			Help: "Total number of meeting and action store operations by outcome",
		},
		[]string{"entity", "operation", "outcome"},
	)

	// StoreOperationDuration observes store operation latency in seconds
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracker_store_operation_duration_seconds",
			Help:    "Store operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"entity", "operation"},
	)

	// CascadeDeletedActionsTotal counts actions removed through meeting deletion
	CascadeDeletedActionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_cascade_deleted_actions_total",
			Help: "Total number of actions deleted together with their meeting",
		},
	)
)

// ObserveOperation records the outcome and latency of one store operation
func ObserveOperation(entity, operation, outcome string, started time.Time) {
	StoreOperationsTotal.WithLabelValues(entity, operation, outcome).Inc()
	StoreOperationDuration.WithLabelValues(entity, operation).Observe(time.Since(started).Seconds())
}

// RecordCascadeDelete records actions removed with their meeting
func RecordCascadeDelete(count int64) {
	if count > 0 {
		CascadeDeletedActionsTotal.Add(float64(count))
	}
}
