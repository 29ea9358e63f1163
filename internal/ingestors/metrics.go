package ingestors

import (
	"dynamo-insights/internal/shared/metrics"
)

var (
	// labelled by error code, empty on success
	metricBatchIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batches_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRecordsIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "operation_records_total",
		},
		[]string{"operation"},
	)

	metricBatchSizeRecords = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batch_size_records",
			Buckets:   metrics.ExponentialBuckets(1, 4, 8),
		},
		nil,
	)
)
