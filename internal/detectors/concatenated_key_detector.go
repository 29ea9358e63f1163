package detectors

import (
	"fmt"
	"slices"

	"dynamo-insights/internal/models"
)

const concatenatedKeyMinUsage = 10

// DetectConcatenatedKeyPatterns flags heavily used indexes whose keys may be built by string
// concatenation. Key encodings are not observable, so this is a low-confidence hint only.
func DetectConcatenatedKeyPatterns(records []models.OperationRecord) []models.Recommendation {
	groups := newOrderedGroups[*models.OperationRecord]()
	for i := range records {
		if records[i].IndexName == "" {
			continue
		}
		groups.add(records[i].ResourceLabel(), &records[i])
	}

	var recs []models.Recommendation
	groups.each(func(_ string, members []*models.OperationRecord) {
		if len(members) <= concatenatedKeyMinUsage {
			return
		}
		var ops []models.OperationType
		for _, m := range members {
			if !slices.Contains(ops, m.Operation) {
				ops = append(ops, m.Operation)
			}
		}
		index, resource := members[0].IndexName, members[0].ResourceName
		recs = append(recs, models.Recommendation{
			Severity: models.SeverityInfo,
			Category: models.CategoryBestPractice,
			Message:  fmt.Sprintf("Review key composition of index %s on table %s", index, resource),
			Details: fmt.Sprintf("Index %s on table %s was used %d times. If its keys concatenate several attributes "+
				"into one string (for example \"TENANT#42#STATUS#open\"), native multi-attribute composite keys avoid "+
				"building and parsing those strings. Low confidence: actual key values are not inspected.",
				index, resource, len(members)),
			SuggestedAction:    "Check whether the index key is a concatenated string and model it from separate attributes if so",
			AffectedOperations: ops,
		})
	})
	return recs
}
