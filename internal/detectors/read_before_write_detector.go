package detectors

import (
	"fmt"
	"sort"

	"dynamo-insights/internal/models"
)

const (
	readBeforeWriteWindowMs = 5000
	readBeforeWriteMinPairs = 3
)

// DetectReadBeforeWrite reports item keys that are repeatedly read and then overwritten shortly
// after, the shape of a read-modify-write that an update expression does atomically.
func DetectReadBeforeWrite(records []models.OperationRecord) []models.Recommendation {
	type timeline struct {
		gets []int64
		puts []int64
	}

	var keys []string
	timelines := make(map[string]*timeline)
	for i := range records {
		r := &records[i]
		if r.PartitionKeyValue == "" || (r.Operation != models.OperationGet && r.Operation != models.OperationPut) {
			continue
		}
		key := r.PartitionKeyValue
		if r.SortKeyValue != "" {
			key += "#" + r.SortKeyValue
		}
		tl, ok := timelines[key]
		if !ok {
			tl = &timeline{}
			timelines[key] = tl
			keys = append(keys, key)
		}
		if r.Operation == models.OperationGet {
			tl.gets = append(tl.gets, r.Timestamp)
		} else {
			tl.puts = append(tl.puts, r.Timestamp)
		}
	}

	var recs []models.Recommendation
	for _, key := range keys {
		tl := timelines[key]
		if len(tl.gets) == 0 || len(tl.puts) == 0 {
			continue
		}
		sort.Slice(tl.puts, func(i, j int) bool { return tl.puts[i] < tl.puts[j] })

		pairs := 0
		for _, g := range tl.gets {
			// first put strictly after the get
			idx := sort.Search(len(tl.puts), func(i int) bool { return tl.puts[i] > g })
			if idx < len(tl.puts) && tl.puts[idx]-g <= readBeforeWriteWindowMs {
				pairs++
			}
		}
		if pairs < readBeforeWriteMinPairs {
			continue
		}
		recs = append(recs, models.Recommendation{
			Severity: models.SeverityInfo,
			Category: models.CategoryPerformance,
			Message:  "Read-modify-write pattern detected",
			Details: fmt.Sprintf("Item %s was read and then rewritten within %dms %d times.",
				key, readBeforeWriteWindowMs, pairs),
			SuggestedAction:    "Use update with an update expression (for example SET #count = #count + :inc) and a condition expression instead of get followed by put",
			AffectedOperations: []models.OperationType{models.OperationGet, models.OperationPut},
			EstimatedImpact: &models.EstimatedImpact{
				CostReduction:          "One read fewer per write",
				PerformanceImprovement: "One round trip instead of two, without a race between read and write",
			},
		})
	}
	return recs
}
