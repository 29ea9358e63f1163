package detectors

import (
	"fmt"
	"sort"

	"dynamo-insights/internal/models"
)

const (
	// hotPartitionShare is the traffic share a bucket must strictly exceed to be reported.
	hotPartitionShare = 0.10
	primaryKeyBucket  = "primary"
)

// DetectHotPartitions buckets every record by table primary key or secondary index and reports
// buckets receiving more than 10% of all recorded traffic, busiest first.
func DetectHotPartitions(records []models.OperationRecord) []models.HotPartitionReport {
	if len(records) == 0 {
		return nil
	}

	groups := newOrderedGroups[*models.OperationRecord]()
	for i := range records {
		bucket := records[i].IndexName
		if bucket == "" {
			bucket = primaryKeyBucket
		}
		groups.add(records[i].ResourceName+":"+bucket, &records[i])
	}

	total := float64(len(records))
	var reports []models.HotPartitionReport
	groups.each(func(key string, members []*models.OperationRecord) {
		percentage := float64(len(members)) / total
		if percentage <= hotPartitionShare {
			return
		}
		first := members[0]
		reports = append(reports, models.HotPartitionReport{
			Bucket:         key,
			ResourceName:   first.ResourceName,
			IndexName:      first.IndexName,
			AccessCount:    len(members),
			Percentage:     percentage,
			Recommendation: hotPartitionAdvice(first, percentage),
		})
	})

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Percentage > reports[j].Percentage
	})
	return reports
}

func hotPartitionAdvice(r *models.OperationRecord, percentage float64) string {
	if r.IndexName != "" {
		return fmt.Sprintf("Index %s on table %s receives %.1f%% of all traffic. "+
			"Spread its partition key across more distinct values so reads and writes do not concentrate on a few partitions.",
			r.IndexName, r.ResourceName, percentage*100)
	}
	return fmt.Sprintf("Table %s (primary key) receives %.1f%% of all traffic. "+
		"Add a random or calculated suffix to busy partition keys (write sharding) to spread load across partitions.",
		r.ResourceName, percentage*100)
}
