package detectors

import (
	"fmt"

	"dynamo-insights/internal/models"
)

const (
	kilobyte           = 1024
	largeItemBytes     = 100 * kilobyte
	veryLargeItemBytes = 300 * kilobyte
	itemSizeLimitBytes = 400 * kilobyte
)

// DetectLargeItems reports writes of large items in two tiers: 100KB up to 300KB, and 300KB or
// more, the latter being close to the hard per-item limit.
func DetectLargeItems(records []models.OperationRecord) []models.Recommendation {
	var large, veryLarge []int64
	for i := range records {
		r := &records[i]
		if (r.Operation != models.OperationPut && r.Operation != models.OperationUpdate) || r.ItemSizeBytes == nil {
			continue
		}
		switch size := *r.ItemSizeBytes; {
		case size >= veryLargeItemBytes:
			veryLarge = append(veryLarge, size)
		case size >= largeItemBytes:
			large = append(large, size)
		}
	}

	var recs []models.Recommendation
	if len(large) > 0 {
		avg, peak := sizeSummaryKB(large)
		recs = append(recs, models.Recommendation{
			Severity: models.SeverityInfo,
			Category: models.CategoryCost,
			Message:  "Large items detected",
			Details: fmt.Sprintf("%d put/update operations wrote items between 100KB and 300KB (average %.1fKB, max %.1fKB).",
				len(large), avg, peak),
			SuggestedAction:    "Consider offloading large attributes to blob storage such as S3 and keeping a reference in the item",
			AffectedOperations: []models.OperationType{models.OperationPut, models.OperationUpdate},
			EstimatedImpact: &models.EstimatedImpact{
				CostReduction: "Write units are charged per 1KB of item size",
			},
		})
	}
	if len(veryLarge) > 0 {
		avg, peak := sizeSummaryKB(veryLarge)
		recs = append(recs, models.Recommendation{
			Severity: models.SeverityWarning,
			Category: models.CategoryBestPractice,
			Message:  "Items approaching the 400KB item size limit",
			Details: fmt.Sprintf("%d put/update operations wrote items of 300KB or more (average %.1fKB, max %.1fKB). "+
				"Writes fail once an item exceeds %dKB.", len(veryLarge), avg, peak, itemSizeLimitBytes/kilobyte),
			SuggestedAction:    "Move large attributes to blob storage or split the item across several items now, before writes start failing",
			AffectedOperations: []models.OperationType{models.OperationPut, models.OperationUpdate},
		})
	}
	return recs
}

func sizeSummaryKB(sizes []int64) (avg, peak float64) {
	var total int64
	var largest int64
	for _, s := range sizes {
		total += s
		largest = max(largest, s)
	}
	return float64(total) / float64(len(sizes)) / kilobyte, float64(largest) / kilobyte
}
