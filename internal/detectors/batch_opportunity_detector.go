package detectors

import (
	"fmt"

	"dynamo-insights/internal/models"
)

const (
	batchWindowMs      = 1000
	batchMinOperations = 5
	maxBatchGetItems   = 100
	maxBatchWriteItems = 25
)

// DetectBatchOpportunities looks for bursts of single-item calls that a batch call could serve.
// Reads and writes are separate passes and each yields at most one recommendation, for the
// first window of at least five calls within one second.
func DetectBatchOpportunities(records []models.OperationRecord) []models.Recommendation {
	var recs []models.Recommendation

	gets := filterByOperation(records, models.OperationGet)
	sortByTimestamp(gets)
	if n, ok := firstDenseWindow(gets); ok {
		recs = append(recs, models.Recommendation{
			Severity: models.SeverityInfo,
			Category: models.CategoryPerformance,
			Message:  "Batch get opportunity",
			Details: fmt.Sprintf("Found %d individual get operations within %dms. "+
				"A single batchGet request can fetch up to %d items.", n, batchWindowMs, maxBatchGetItems),
			SuggestedAction:    "Replace the individual get calls with batchGet",
			AffectedOperations: []models.OperationType{models.OperationGet},
			EstimatedImpact: &models.EstimatedImpact{
				PerformanceImprovement: fmt.Sprintf("%d requests reduced to %d batchGet request(s)", n, ceilDiv(n, maxBatchGetItems)),
			},
		})
	}

	writes := filterByOperation(records, models.OperationPut, models.OperationDelete)
	sortByTimestamp(writes)
	if n, ok := firstDenseWindow(writes); ok {
		recs = append(recs, models.Recommendation{
			Severity: models.SeverityInfo,
			Category: models.CategoryPerformance,
			Message:  "Batch write opportunity",
			Details: fmt.Sprintf("Found %d individual put/delete operations within %dms. "+
				"A single batchWrite request can write up to %d items.", n, batchWindowMs, maxBatchWriteItems),
			SuggestedAction:    "Replace the individual put and delete calls with batchWrite",
			AffectedOperations: []models.OperationType{models.OperationPut, models.OperationDelete},
			EstimatedImpact: &models.EstimatedImpact{
				PerformanceImprovement: fmt.Sprintf("%d requests reduced to %d batchWrite request(s)", n, ceilDiv(n, maxBatchWriteItems)),
			},
		})
	}
	return recs
}

// firstDenseWindow returns the size of the first window, anchored at each record in turn, that
// holds at least batchMinOperations records within batchWindowMs of its anchor.
func firstDenseWindow(sorted []models.OperationRecord) (int, bool) {
	for start := range sorted {
		end := start + 1
		for end < len(sorted) && sorted[end].Timestamp-sorted[start].Timestamp <= batchWindowMs {
			end++
		}
		if end-start >= batchMinOperations {
			return end - start, true
		}
	}
	return 0, false
}
