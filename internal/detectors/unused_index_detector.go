package detectors

import (
	"fmt"
	"sort"
	"time"

	"dynamo-insights/internal/models"
)

// unusedIndexAge is how long an index must go unused, strictly, before it is reported.
const unusedIndexAge = 7 * 24 * time.Hour

// DetectUnusedIndexes reports secondary indexes whose most recent recorded use is older than
// seven days relative to now, stalest first.
func DetectUnusedIndexes(records []models.OperationRecord, now time.Time) []models.UnusedIndexReport {
	type usage struct {
		resource string
		index    string
		count    int
		lastUsed int64
	}

	groups := newOrderedGroups[*models.OperationRecord]()
	for i := range records {
		if records[i].IndexName == "" {
			continue
		}
		groups.add(records[i].ResourceLabel(), &records[i])
	}

	var reports []models.UnusedIndexReport
	groups.each(func(_ string, members []*models.OperationRecord) {
		u := usage{resource: members[0].ResourceName, index: members[0].IndexName, lastUsed: members[0].Timestamp}
		for _, m := range members {
			u.count++
			u.lastUsed = max(u.lastUsed, m.Timestamp)
		}

		lastUsed := time.UnixMilli(u.lastUsed).UTC()
		age := now.Sub(lastUsed)
		if age <= unusedIndexAge {
			return
		}
		days := age.Hours() / 24
		reports = append(reports, models.UnusedIndexReport{
			ResourceName:     u.resource,
			IndexName:        u.index,
			UsageCount:       u.count,
			LastUsed:         lastUsed,
			DaysSinceLastUse: days,
			Recommendation: fmt.Sprintf("Index %s on table %s was last used %.1f days ago. "+
				"Delete it if no access pattern still needs it to save write capacity and storage.",
				u.index, u.resource, days),
		})
	})

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].LastUsed.Before(reports[j].LastUsed)
	})
	return reports
}
