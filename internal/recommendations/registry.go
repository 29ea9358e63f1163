package recommendations

import (
	"fmt"

	"dynamo-insights/internal/detectors"
	"dynamo-insights/internal/models"
)

// Detector names, also used as metric and log labels.
const (
	DetectorHotPartition     = "hot_partition"
	DetectorScanEfficiency   = "scan_efficiency"
	DetectorUnusedIndex      = "unused_index"
	DetectorCapacityMode     = "capacity_mode"
	DetectorBatchOpportunity = "batch_opportunity"
	DetectorConcatenatedKey  = "concatenated_key"
	DetectorProjection       = "projection"
	DetectorFetchingToFilter = "fetching_to_filter"
	DetectorSequentialWrite  = "sequential_write"
	DetectorReadBeforeWrite  = "read_before_write"
	DetectorLargeItem        = "large_item"
	DetectorUniformPartition = "uniform_partition_key"
)

const multiAttributeKeySuggestion = "For a secondary index, a multi-attribute composite partition key spreads " +
	"traffic across attribute combinations without building synthetic sharded keys."

// DefaultDetectors returns the built-in detectors in evaluation order. Results of detectors
// that share a severity keep this order after sorting.
func DefaultDetectors(pricing detectors.Pricing) []detectors.Detector {
	return []detectors.Detector{
		detectors.New(DetectorHotPartition, hotPartitionRecommendations),
		detectors.New(DetectorScanEfficiency, scanEfficiencyRecommendations),
		detectors.New(DetectorUnusedIndex, unusedIndexRecommendations),
		detectors.New(DetectorCapacityMode, func(in *detectors.Input) []models.Recommendation {
			return capacityModeRecommendations(in, pricing)
		}),
		detectors.New(DetectorBatchOpportunity, recordsOnly(detectors.DetectBatchOpportunities)),
		detectors.New(DetectorConcatenatedKey, recordsOnly(detectors.DetectConcatenatedKeyPatterns)),
		detectors.New(DetectorProjection, recordsOnly(detectors.DetectProjectionOpportunities)),
		detectors.New(DetectorFetchingToFilter, recordsOnly(detectors.DetectFetchingToFilter)),
		detectors.New(DetectorSequentialWrite, recordsOnly(detectors.DetectSequentialWrites)),
		detectors.New(DetectorReadBeforeWrite, recordsOnly(detectors.DetectReadBeforeWrite)),
		detectors.New(DetectorLargeItem, recordsOnly(detectors.DetectLargeItems)),
		detectors.New(DetectorUniformPartition, recordsOnly(detectors.DetectNonUniformPartitionKeys)),
	}
}

func recordsOnly(detect func([]models.OperationRecord) []models.Recommendation) func(*detectors.Input) []models.Recommendation {
	return func(in *detectors.Input) []models.Recommendation {
		return detect(in.Records)
	}
}

func hotPartitionRecommendations(in *detectors.Input) []models.Recommendation {
	reports := detectors.DetectHotPartitions(in.Records)
	recs := make([]models.Recommendation, 0, len(reports))
	for i := range reports {
		report := &reports[i]

		severity := models.SeverityInfo
		switch {
		case report.Percentage > 0.5:
			severity = models.SeverityError
		case report.Percentage > 0.3:
			severity = models.SeverityWarning
		}

		action := "Distribute traffic across more partition key values"
		if report.IsIndex() {
			action += ". " + multiAttributeKeySuggestion
		}
		recs = append(recs, models.Recommendation{
			Severity:        severity,
			Category:        models.CategoryHotPartition,
			Message:         fmt.Sprintf("Hot partition on %s (%.1f%% of traffic)", report.Bucket, report.Percentage*100),
			Details:         report.Recommendation,
			SuggestedAction: action,
		})
	}
	return recs
}

func scanEfficiencyRecommendations(in *detectors.Input) []models.Recommendation {
	reports := detectors.DetectScanInefficiencies(in.Records)
	recs := make([]models.Recommendation, 0, len(reports))
	for i := range reports {
		report := &reports[i]

		severity := models.SeverityInfo
		switch {
		case report.Efficiency < 0.05:
			severity = models.SeverityError
		case report.Efficiency < 0.10:
			severity = models.SeverityWarning
		}
		recs = append(recs, models.Recommendation{
			Severity:           severity,
			Category:           models.CategoryPerformance,
			Message:            fmt.Sprintf("Inefficient %s (%.1f%% efficiency)", report.Operation, report.Efficiency*100),
			Details:            report.Recommendation,
			SuggestedAction:    "Use a query with a key condition, adding a secondary index for the filtered attribute if needed",
			AffectedOperations: []models.OperationType{models.OperationScan},
			EstimatedImpact: &models.EstimatedImpact{
				CostReduction: fmt.Sprintf("Up to %.0f%% fewer read units", (1-report.Efficiency)*100),
			},
		})
	}
	return recs
}

func unusedIndexRecommendations(in *detectors.Input) []models.Recommendation {
	reports := detectors.DetectUnusedIndexes(in.Records, in.Now)
	recs := make([]models.Recommendation, 0, len(reports))
	for i := range reports {
		report := &reports[i]
		recs = append(recs, models.Recommendation{
			Severity:        models.SeverityInfo,
			Category:        models.CategoryCost,
			Message:         fmt.Sprintf("Index %s on %s appears unused", report.IndexName, report.ResourceName),
			Details:         report.Recommendation,
			SuggestedAction: "Delete the index if no access pattern depends on it",
			EstimatedImpact: &models.EstimatedImpact{
				CostReduction: "Removes the index's write amplification and storage",
			},
		})
	}
	return recs
}

func capacityModeRecommendations(in *detectors.Input, pricing detectors.Pricing) []models.Recommendation {
	if len(in.Records) == 0 {
		return nil
	}
	advice := detectors.AdviseCapacityMode(in.Records, pricing)
	return []models.Recommendation{{
		Severity: models.SeverityInfo,
		Category: models.CategoryCapacity,
		Message:  fmt.Sprintf("Consider %s capacity mode", advice.RecommendedMode),
		Details: fmt.Sprintf("%s Estimated monthly cost: provisioned $%.2f, on-demand $%.2f.",
			advice.Reasoning, advice.EstimatedMonthlyCost.Provisioned, advice.EstimatedMonthlyCost.OnDemand),
		SuggestedAction: fmt.Sprintf("Compare the table's billing mode with the recommended %s mode", advice.RecommendedMode),
	}}
}
