package reporters

import (
	"dynamo-insights/internal/shared/metrics"
)

var (
	metricReportsGeneratedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReporter,
			Name:      "reports_generated_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricReportDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReporter,
			Name:      "report_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{},
	)

	metricLastReportRecordCount = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReporter,
			Name:      "last_report_record_count",
		},
		[]string{},
	)
)
