package recommendations

import (
	"dynamo-insights/internal/shared/metrics"
)

var (
	// findings of the most recent analysis
	metricRecommendationsCurrent = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRecommendation,
			Name:      "current",
		},
		[]string{"severity", "category"},
	)

	metricDetectorFailuresTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRecommendation,
			Name:      "detector_failures_total",
		},
		[]string{"detector"},
	)
)
