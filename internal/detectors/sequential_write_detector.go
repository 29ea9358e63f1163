package detectors

import (
	"fmt"
	"time"

	"dynamo-insights/internal/models"
)

const (
	sequentialWriteWindowMs   = 1000
	sequentialWriteMinCluster = 3
)

// DetectSequentialWrites splits the put/delete timeline into contiguous clusters anchored at
// their first write and reports every cluster of three or more.
func DetectSequentialWrites(records []models.OperationRecord) []models.Recommendation {
	writes := filterByOperation(records, models.OperationPut, models.OperationDelete)
	if len(writes) < sequentialWriteMinCluster {
		return nil
	}
	sortByTimestamp(writes)

	var recs []models.Recommendation
	flush := func(cluster []models.OperationRecord) {
		if len(cluster) < sequentialWriteMinCluster {
			return
		}
		var puts, deletes int
		for i := range cluster {
			if cluster[i].Operation == models.OperationPut {
				puts++
			} else {
				deletes++
			}
		}
		size := len(cluster)
		recs = append(recs, models.Recommendation{
			Severity: models.SeverityInfo,
			Category: models.CategoryPerformance,
			Message:  "Sequential writes could be batched",
			Details: fmt.Sprintf("%d writes (%d put, %d delete) were issued one by one within %dms starting at %s.",
				size, puts, deletes, sequentialWriteWindowMs,
				time.UnixMilli(cluster[0].Timestamp).UTC().Format(time.RFC3339)),
			SuggestedAction:    fmt.Sprintf("Group these writes into batchWrite requests of up to %d items", maxBatchWriteItems),
			AffectedOperations: []models.OperationType{models.OperationPut, models.OperationDelete},
			EstimatedImpact: &models.EstimatedImpact{
				PerformanceImprovement: fmt.Sprintf("%d requests reduced to %d batchWrite request(s)", size, ceilDiv(size, maxBatchWriteItems)),
			},
		})
	}

	start := 0
	for i := 1; i < len(writes); i++ {
		if writes[i].Timestamp-writes[start].Timestamp > sequentialWriteWindowMs {
			flush(writes[start:i])
			start = i
		}
	}
	flush(writes[start:])
	return recs
}
