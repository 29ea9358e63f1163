package detectors

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"dynamo-insights/internal/models"
)

const (
	uniformKeyMinSamples  = 20
	sequentialKeyFraction = 0.5
	timestampKeyFraction  = 0.5
)

var (
	digitRunPattern   = regexp.MustCompile(`\d+`)
	isoDatePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	epochValuePattern = regexp.MustCompile(`^\d{10,13}$`)
)

// DetectNonUniformPartitionKeys inspects written partition key values for shapes that pile
// writes onto few partitions: consecutive numeric ids and timestamps.
func DetectNonUniformPartitionKeys(records []models.OperationRecord) []models.Recommendation {
	var keys []string
	for i := range records {
		r := &records[i]
		if (r.Operation == models.OperationPut || r.Operation == models.OperationUpdate) && r.PartitionKeyValue != "" {
			keys = append(keys, r.PartitionKeyValue)
		}
	}
	if len(keys) < uniformKeyMinSamples {
		return nil
	}

	var recs []models.Recommendation
	if fraction, sampled, ok := sequentialFraction(keys); ok && fraction > sequentialKeyFraction {
		recs = append(recs, models.Recommendation{
			Severity: models.SeverityWarning,
			Category: models.CategoryHotPartition,
			Message:  "Sequential partition keys detected",
			Details: fmt.Sprintf("%.1f%% of adjacent pairs among %d numeric partition keys differ by exactly one. "+
				"Sequential keys concentrate writes on a narrow key range.", fraction*100, sampled),
			SuggestedAction:    "Use hash-based or randomized partition key components, such as a UUID or a hashed prefix, instead of sequential ids",
			AffectedOperations: []models.OperationType{models.OperationPut, models.OperationUpdate},
		})
	}

	timestampLike := 0
	for _, k := range keys {
		if isoDatePattern.MatchString(k) || epochValuePattern.MatchString(k) {
			timestampLike++
		}
	}
	if share := float64(timestampLike) / float64(len(keys)); share > timestampKeyFraction {
		recs = append(recs, models.Recommendation{
			Severity: models.SeverityWarning,
			Category: models.CategoryHotPartition,
			Message:  "Timestamp-based partition keys detected",
			Details: fmt.Sprintf("%d of %d partition keys (%.1f%%) look like dates or epoch timestamps. "+
				"Writes for the current period all land on the same partition.", timestampLike, len(keys), share*100),
			SuggestedAction:    "Move the timestamp into the sort key and partition on a well-distributed attribute",
			AffectedOperations: []models.OperationType{models.OperationPut, models.OperationUpdate},
		})
	}
	return recs
}

// sequentialFraction returns the fraction of sorted adjacent numeric keys that differ by one.
// ok is false when fewer than uniformKeyMinSamples keys contain a number.
func sequentialFraction(keys []string) (fraction float64, sampled int, ok bool) {
	var nums []int64
	for _, k := range keys {
		digits := digitRunPattern.FindString(k)
		if digits == "" {
			continue
		}
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	if len(nums) < uniformKeyMinSamples {
		return 0, len(nums), false
	}

	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })
	adjacent := 0
	for i := 1; i < len(nums); i++ {
		if nums[i]-nums[i-1] == 1 {
			adjacent++
		}
	}
	return float64(adjacent) / float64(len(nums)-1), len(nums), true
}
