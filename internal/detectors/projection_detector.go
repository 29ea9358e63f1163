package detectors

import (
	"fmt"

	"dynamo-insights/internal/models"
)

const (
	projectionMinUnprojected = 10
	projectionUsageThreshold = 0.5
)

var projectionOperations = []models.OperationType{
	models.OperationGet,
	models.OperationQuery,
	models.OperationScan,
	models.OperationBatchGet,
}

// DetectProjectionOpportunities reports read operation types that mostly fetch whole items.
// Records that do not say whether a projection was used are left out.
func DetectProjectionOpportunities(records []models.OperationRecord) []models.Recommendation {
	var recs []models.Recommendation
	for _, op := range projectionOperations {
		var total, unprojected int
		for i := range records {
			r := &records[i]
			if r.Operation != op || r.UsedProjection == nil {
				continue
			}
			total++
			if !*r.UsedProjection {
				unprojected++
			}
		}
		if total == 0 {
			continue
		}

		usageRate := 1 - float64(unprojected)/float64(total)
		if usageRate >= projectionUsageThreshold || unprojected <= projectionMinUnprojected {
			continue
		}
		recs = append(recs, models.Recommendation{
			Severity: models.SeverityInfo,
			Category: models.CategoryPerformance,
			Message:  fmt.Sprintf("Use projection expressions for %s operations", op),
			Details: fmt.Sprintf("%d of %d %s operations (%.1f%%) returned full items without a projection expression.",
				unprojected, total, op, float64(unprojected)/float64(total)*100),
			SuggestedAction:    "Add a ProjectionExpression listing only the attributes the caller reads",
			AffectedOperations: []models.OperationType{op},
			EstimatedImpact: &models.EstimatedImpact{
				PerformanceImprovement: "Smaller responses cut network transfer and unmarshalling time",
			},
		})
	}
	return recs
}
