package collectors

import (
	"dynamo-insights/internal/shared/metrics"
)

const (
	outcomeRecorded   = "recorded"
	outcomeSampledOut = "sampled_out"
	outcomeDisabled   = "disabled"

	thresholdSlowQuery      = "slow_query"
	thresholdHighReadUnits  = "high_read_units"
	thresholdHighWriteUnits = "high_write_units"
)

var (
	metricRecordsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCollector,
			Name:      "records_total",
		},
		[]string{"operation", "outcome"},
	)

	metricThresholdExceededTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCollector,
			Name:      "threshold_exceeded_total",
		},
		[]string{"threshold"},
	)
)
