package streams

import (
	"dynamo-insights/internal/shared/metrics"
)

const streamOperationRecorded = "operation_recorded"

var (
	metricEventsPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "events_published_total",
		},
		[]string{"stream_id"},
	)

	metricEventsConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "events_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)

	// time between ingestion and hand-off to the collector
	metricEventLagSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "event_lag_seconds",
			Buckets:   metrics.ExponentialBuckets(0.0005, 4, 8),
		},
		[]string{"stream_id"},
	)

	metricPartitionBacklog = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "partition_backlog",
		},
		[]string{"stream_id", "partition"},
	)
)
