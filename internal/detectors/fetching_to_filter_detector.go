package detectors

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"dynamo-insights/internal/models"
)

const (
	fetchMinGroupSize       = 3
	fetchEfficiencyLimit    = 0.5
	fetchEfficiencyCritical = 0.2
)

// DetectFetchingToFilter reports query groups that throw away most of what they read, which
// usually means a filter expression is doing the work a key condition should.
func DetectFetchingToFilter(records []models.OperationRecord) []models.Recommendation {
	groups := newOrderedGroups[float64]()
	for i := range records {
		r := &records[i]
		if r.Operation != models.OperationQuery || r.ScannedCount == nil || *r.ScannedCount <= 0 {
			continue
		}
		key := r.AccessPattern
		if key == "" {
			key = r.ResourceLabel()
		}
		groups.add(key, float64(r.ItemCount)/float64(*r.ScannedCount))
	}

	var recs []models.Recommendation
	groups.each(func(key string, efficiencies []float64) {
		if len(efficiencies) < fetchMinGroupSize {
			return
		}
		mean := stat.Mean(efficiencies, nil)
		if mean >= fetchEfficiencyLimit {
			return
		}
		severity := models.SeverityInfo
		if mean < fetchEfficiencyCritical {
			severity = models.SeverityWarning
		}
		recs = append(recs, models.Recommendation{
			Severity: severity,
			Category: models.CategoryPerformance,
			Message:  fmt.Sprintf("Queries for %s fetch items only to filter them out", key),
			Details: fmt.Sprintf("Across %d queries for %s, on average only %.1f%% of the items read were returned.",
				len(efficiencies), key, mean*100),
			SuggestedAction:    "Move the filter condition into the key condition, for example with a composite sort key or a dedicated secondary index",
			AffectedOperations: []models.OperationType{models.OperationQuery},
			EstimatedImpact: &models.EstimatedImpact{
				CostReduction: fmt.Sprintf("Up to %.0f%% fewer read units for these queries", (1-mean)*100),
			},
		})
	})
	return recs
}
