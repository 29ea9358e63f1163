package detectors

import (
	"strconv"
	"testing"
	"time"

	"dynamo-insights/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(op models.OperationType, resource, index string, ts int64) models.OperationRecord {
	return models.OperationRecord{Operation: op, ResourceName: resource, IndexName: index, Timestamp: ts}
}

func repeat(n int, build func(i int) models.OperationRecord) []models.OperationRecord {
	records := make([]models.OperationRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, build(i))
	}
	return records
}

func TestNew_AdaptsFunction(t *testing.T) {
	t.Parallel()

	d := New("always", func(in *Input) []models.Recommendation {
		return []models.Recommendation{{Message: "seen", Details: in.Now.Format(time.RFC3339)}}
	})
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "always", d.Name())
	recs := d.Detect(&Input{Now: now})
	require.Len(t, recs, 1)
	assert.Equal(t, "2026-01-01T00:00:00Z", recs[0].Details)
}

func TestDetectHotPartitions(t *testing.T) {
	t.Parallel()

	t.Run("two index buckets sorted by share", func(t *testing.T) {
		t.Parallel()

		records := repeat(60, func(i int) models.OperationRecord {
			return record(models.OperationQuery, "orders", "GSI1", int64(i))
		})
		records = append(records, repeat(40, func(i int) models.OperationRecord {
			return record(models.OperationQuery, "orders", "GSI2", int64(i))
		})...)

		reports := DetectHotPartitions(records)

		require.Len(t, reports, 2)
		assert.Equal(t, "orders:GSI1", reports[0].Bucket)
		assert.InDelta(t, 0.6, reports[0].Percentage, 1e-9)
		assert.Equal(t, 60, reports[0].AccessCount)
		assert.Contains(t, reports[0].Recommendation, "60.0%")
		assert.Equal(t, "orders:GSI2", reports[1].Bucket)
		assert.InDelta(t, 0.4, reports[1].Percentage, 1e-9)
		assert.True(t, reports[1].IsIndex())
	})

	t.Run("share must strictly exceed ten percent", func(t *testing.T) {
		t.Parallel()

		records := repeat(9, func(i int) models.OperationRecord {
			return record(models.OperationGet, "users", "", int64(i))
		})
		records = append(records, record(models.OperationQuery, "users", "byEmail", 10))

		reports := DetectHotPartitions(records)

		require.Len(t, reports, 1)
		assert.Equal(t, "users:primary", reports[0].Bucket)
		assert.False(t, reports[0].IsIndex())
		assert.Contains(t, reports[0].Recommendation, "90.0%")
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, DetectHotPartitions(nil))
	})
}

func TestDetectScanInefficiencies(t *testing.T) {
	t.Parallel()

	scan := func(index string, items, scanned int) models.OperationRecord {
		r := record(models.OperationScan, "orders", index, 0)
		r.ItemCount = items
		r.ScannedCount = models.Ptr(scanned)
		return r
	}

	records := []models.OperationRecord{
		scan("", 15, 100),
		scan("GSI1", 5, 100),
		scan("", 20, 100),
		scan("", 0, 0),
		record(models.OperationScan, "orders", "", 0),
		func() models.OperationRecord {
			r := record(models.OperationQuery, "orders", "", 0)
			r.ScannedCount = models.Ptr(100)
			return r
		}(),
	}

	reports := DetectScanInefficiencies(records)

	require.Len(t, reports, 2)
	assert.Equal(t, "scan on orders:GSI1", reports[0].Operation)
	assert.InDelta(t, 0.05, reports[0].Efficiency, 1e-9)
	assert.Equal(t, 5, reports[0].ItemCount)
	assert.Equal(t, 100, reports[0].ScannedCount)
	assert.Equal(t, "scan on orders", reports[1].Operation)
	assert.InDelta(t, 0.15, reports[1].Efficiency, 1e-9)
}

func TestDetectUnusedIndexes(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	daysAgo := func(d float64) int64 {
		return now.Add(-time.Duration(d * float64(24*time.Hour))).UnixMilli()
	}

	records := []models.OperationRecord{
		record(models.OperationQuery, "orders", "recent", daysAgo(6)),
		record(models.OperationQuery, "orders", "stale", daysAgo(8)),
		record(models.OperationQuery, "orders", "stale", daysAgo(9)),
		record(models.OperationQuery, "orders", "staler", daysAgo(30)),
		record(models.OperationQuery, "orders", "boundary", daysAgo(7)),
		record(models.OperationGet, "orders", "", daysAgo(100)),
	}

	reports := DetectUnusedIndexes(records, now)

	require.Len(t, reports, 2)
	assert.Equal(t, "staler", reports[0].IndexName)
	assert.Equal(t, "stale", reports[1].IndexName)
	assert.Equal(t, 2, reports[1].UsageCount)
	assert.Equal(t, time.UnixMilli(daysAgo(8)).UTC(), reports[1].LastUsed)
	assert.InDelta(t, 8.0, reports[1].DaysSinceLastUse, 1e-6)
	assert.Contains(t, reports[1].Recommendation, "8.0 days")
}

func TestAdviseCapacityMode(t *testing.T) {
	t.Parallel()

	hourly := func(counts ...int) []models.OperationRecord {
		var records []models.OperationRecord
		for hour, n := range counts {
			for i := 0; i < n; i++ {
				r := record(models.OperationGet, "orders", "", int64(hour)*3_600_000+int64(i))
				r.ConsumedReadUnits = models.Ptr(1.0)
				records = append(records, r)
			}
		}
		return records
	}

	tests := []struct {
		name      string
		records   []models.OperationRecord
		wantMode  models.CapacityMode
		reasoning string
	}{
		{name: "no data", records: nil, wantMode: models.CapacityModeOnDemand, reasoning: "No operation data"},
		{name: "spiky", records: hourly(1, 100), wantMode: models.CapacityModeOnDemand, reasoning: "highly variable"},
		{name: "idle hours", records: hourly(10, 60, 60, 60, 60, 60, 60, 60, 60, 60), wantMode: models.CapacityModeOnDemand, reasoning: "idle periods"},
		{name: "steady", records: hourly(20, 20, 20), wantMode: models.CapacityModeProvisioned, reasoning: "steady"},
		{name: "low volume", records: hourly(5, 5, 5), wantMode: models.CapacityModeOnDemand, reasoning: "moderately variable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := AdviseCapacityMode(tt.records, DefaultPricing())

			assert.Equal(t, models.CapacityModeUnknown, rec.CurrentMode)
			assert.Equal(t, tt.wantMode, rec.RecommendedMode)
			assert.Contains(t, rec.Reasoning, tt.reasoning)
		})
	}
}

func TestAdviseCapacityMode_TrafficPatternAndCost(t *testing.T) {
	t.Parallel()

	var records []models.OperationRecord
	for hour := 0; hour < 3; hour++ {
		for i := 0; i < 20; i++ {
			r := record(models.OperationGet, "orders", "", int64(hour)*3_600_000+int64(i))
			r.ConsumedReadUnits = models.Ptr(1.0)
			records = append(records, r)
		}
	}
	// a gap hour with no traffic does not count as an idle hour
	w := record(models.OperationPut, "orders", "", 10*3_600_000)
	w.ConsumedWriteUnits = models.Ptr(2.0)
	records = append(records, repeat(20, func(i int) models.OperationRecord { return w })...)

	rec := AdviseCapacityMode(records, DefaultPricing())

	assert.Equal(t, models.CapacityModeProvisioned, rec.RecommendedMode)
	assert.InDelta(t, 20.0, rec.TrafficPattern.AvgOpsPerHour, 1e-9)
	assert.InDelta(t, 20.0, rec.TrafficPattern.PeakOpsPerHour, 1e-9)
	assert.InDelta(t, 20.0, rec.TrafficPattern.MinOpsPerHour, 1e-9)
	assert.InDelta(t, 0.0, rec.TrafficPattern.CoefficientOfVariation, 1e-9)
	assert.InDelta(t, (0.00013+0.00065)*730, rec.EstimatedMonthlyCost.Provisioned, 1e-9)
	assert.InDelta(t, 60*0.00000025+40*0.00000125, rec.EstimatedMonthlyCost.OnDemand, 1e-12)
}

func TestDetectBatchOpportunities(t *testing.T) {
	t.Parallel()

	gets := func(spacingMs int64) []models.OperationRecord {
		return repeat(10, func(i int) models.OperationRecord {
			return record(models.OperationGet, "users", "", 1_000_000+int64(i)*spacingMs)
		})
	}

	t.Run("gets within one second", func(t *testing.T) {
		t.Parallel()

		recs := DetectBatchOpportunities(gets(50))

		require.Len(t, recs, 1)
		assert.Contains(t, recs[0].Details, "10 individual get operations")
		assert.Equal(t, models.SeverityInfo, recs[0].Severity)
		assert.Equal(t, models.CategoryPerformance, recs[0].Category)
		assert.Equal(t, []models.OperationType{models.OperationGet}, recs[0].AffectedOperations)
		require.NotNil(t, recs[0].EstimatedImpact)
		assert.Equal(t, "10 requests reduced to 1 batchGet request(s)", recs[0].EstimatedImpact.PerformanceImprovement)
	})

	t.Run("gets too far apart", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, DetectBatchOpportunities(gets(500)))
	})

	t.Run("unsorted input is ordered by timestamp", func(t *testing.T) {
		t.Parallel()

		records := gets(50)
		records[0], records[9] = records[9], records[0]
		recs := DetectBatchOpportunities(records)

		require.Len(t, recs, 1)
		assert.Contains(t, recs[0].Details, "10 individual get operations")
	})

	t.Run("puts and deletes share a pass", func(t *testing.T) {
		t.Parallel()

		records := repeat(30, func(i int) models.OperationRecord {
			op := models.OperationPut
			if i%3 == 0 {
				op = models.OperationDelete
			}
			return record(op, "orders", "", int64(i)*10)
		})

		recs := DetectBatchOpportunities(records)

		require.Len(t, recs, 1)
		assert.Contains(t, recs[0].Details, "30 individual put/delete operations")
		assert.Equal(t, "30 requests reduced to 2 batchWrite request(s)", recs[0].EstimatedImpact.PerformanceImprovement)
	})

	t.Run("window reaching exactly five", func(t *testing.T) {
		t.Parallel()

		records := repeat(5, func(i int) models.OperationRecord {
			return record(models.OperationGet, "users", "", int64(i)*250)
		})

		recs := DetectBatchOpportunities(records)

		require.Len(t, recs, 1)
		assert.Contains(t, recs[0].Details, "5 individual get operations")
	})
}

func TestDetectConcatenatedKeyPatterns(t *testing.T) {
	t.Parallel()

	records := repeat(11, func(i int) models.OperationRecord {
		op := models.OperationQuery
		if i == 5 {
			op = models.OperationScan
		}
		return record(op, "orders", "GSI1", int64(i))
	})
	records = append(records, repeat(10, func(i int) models.OperationRecord {
		return record(models.OperationQuery, "orders", "GSI2", int64(i))
	})...)
	records = append(records, repeat(50, func(i int) models.OperationRecord {
		return record(models.OperationGet, "orders", "", int64(i))
	})...)

	recs := DetectConcatenatedKeyPatterns(records)

	require.Len(t, recs, 1)
	assert.Contains(t, recs[0].Message, "GSI1")
	assert.Contains(t, recs[0].Details, "used 11 times")
	assert.Contains(t, recs[0].Details, "Low confidence")
	assert.Equal(t, []models.OperationType{models.OperationQuery, models.OperationScan}, recs[0].AffectedOperations)
	assert.Equal(t, models.CategoryBestPractice, recs[0].Category)
}

func TestDetectProjectionOpportunities(t *testing.T) {
	t.Parallel()

	withProjection := func(op models.OperationType, used bool) func(int) models.OperationRecord {
		return func(i int) models.OperationRecord {
			r := record(op, "users", "", int64(i))
			r.UsedProjection = models.Ptr(used)
			return r
		}
	}

	var records []models.OperationRecord
	records = append(records, repeat(12, withProjection(models.OperationGet, false))...)
	records = append(records, repeat(11, withProjection(models.OperationQuery, false))...)
	records = append(records, repeat(11, withProjection(models.OperationQuery, true))...)
	records = append(records, repeat(10, withProjection(models.OperationBatchGet, false))...)
	records = append(records, repeat(30, func(i int) models.OperationRecord {
		return record(models.OperationScan, "users", "", int64(i))
	})...)

	recs := DetectProjectionOpportunities(records)

	require.Len(t, recs, 1)
	assert.Equal(t, "Use projection expressions for get operations", recs[0].Message)
	assert.Contains(t, recs[0].Details, "12 of 12 get operations (100.0%)")
	assert.Equal(t, []models.OperationType{models.OperationGet}, recs[0].AffectedOperations)
}

func TestDetectFetchingToFilter(t *testing.T) {
	t.Parallel()

	query := func(pattern, index string, items, scanned int) models.OperationRecord {
		r := record(models.OperationQuery, "orders", index, 0)
		r.AccessPattern = pattern
		r.ItemCount = items
		r.ScannedCount = models.Ptr(scanned)
		return r
	}

	records := []models.OperationRecord{
		query("openOrders", "", 1, 10),
		query("", "GSI1", 3, 10),
		query("openOrders", "", 1, 10),
		query("", "GSI1", 3, 10),
		query("openOrders", "", 1, 10),
		query("", "GSI1", 3, 10),
		query("recentOrders", "", 1, 10),
		query("recentOrders", "", 1, 10),
		query("efficient", "", 9, 10),
		query("efficient", "", 9, 10),
		query("efficient", "", 9, 10),
		query("noScanCount", "", 0, 0),
		query("noScanCount", "", 0, 0),
		query("noScanCount", "", 0, 0),
	}

	recs := DetectFetchingToFilter(records)

	require.Len(t, recs, 2)
	assert.Contains(t, recs[0].Message, "openOrders")
	assert.Equal(t, models.SeverityWarning, recs[0].Severity)
	assert.Contains(t, recs[0].Details, "10.0%")
	assert.Contains(t, recs[1].Message, "orders:GSI1")
	assert.Equal(t, models.SeverityInfo, recs[1].Severity)
	assert.Contains(t, recs[1].Details, "30.0%")
}

func TestDetectSequentialWrites(t *testing.T) {
	t.Parallel()

	records := []models.OperationRecord{
		record(models.OperationPut, "orders", "", 10_200),
		record(models.OperationPut, "orders", "", 0),
		record(models.OperationPut, "orders", "", 100),
		record(models.OperationPut, "orders", "", 200),
		record(models.OperationGet, "orders", "", 300),
		record(models.OperationPut, "orders", "", 5_000),
		record(models.OperationDelete, "orders", "", 5_100),
		record(models.OperationPut, "orders", "", 10_000),
		record(models.OperationDelete, "orders", "", 10_100),
		record(models.OperationDelete, "orders", "", 11_000),
	}

	recs := DetectSequentialWrites(records)

	require.Len(t, recs, 2)
	assert.Contains(t, recs[0].Details, "3 writes (3 put, 0 delete)")
	assert.Contains(t, recs[1].Details, "4 writes (2 put, 2 delete)")
	assert.Equal(t, "4 requests reduced to 1 batchWrite request(s)", recs[1].EstimatedImpact.PerformanceImprovement)
}

func TestDetectReadBeforeWrite(t *testing.T) {
	t.Parallel()

	keyed := func(op models.OperationType, pk, sk string, ts int64) models.OperationRecord {
		r := record(op, "users", "", ts)
		r.PartitionKeyValue = pk
		r.SortKeyValue = sk
		return r
	}

	records := []models.OperationRecord{
		keyed(models.OperationGet, "user#1", "profile", 0),
		keyed(models.OperationPut, "user#1", "profile", 100),
		keyed(models.OperationGet, "user#1", "profile", 1_000),
		keyed(models.OperationPut, "user#1", "profile", 1_200),
		keyed(models.OperationGet, "user#1", "profile", 2_000),
		keyed(models.OperationPut, "user#1", "profile", 7_001),
		// slow round trips never pair
		keyed(models.OperationGet, "user#2", "", 0),
		keyed(models.OperationPut, "user#2", "", 6_000),
		keyed(models.OperationGet, "user#2", "", 10_000),
		keyed(models.OperationPut, "user#2", "", 16_000),
		keyed(models.OperationGet, "user#2", "", 20_000),
		keyed(models.OperationPut, "user#2", "", 26_000),
		// writes that come first do not count
		keyed(models.OperationPut, "user#3", "", 0),
		keyed(models.OperationPut, "user#3", "", 1),
		keyed(models.OperationPut, "user#3", "", 2),
		keyed(models.OperationGet, "user#3", "", 3),
	}

	assert.Empty(t, DetectReadBeforeWrite(records))

	records = append(records, keyed(models.OperationGet, "user#1", "profile", 6_000))
	recs := DetectReadBeforeWrite(records)

	require.Len(t, recs, 1)
	assert.Contains(t, recs[0].Details, "Item user#1#profile")
	assert.Contains(t, recs[0].Details, "3 times")
	assert.Equal(t, []models.OperationType{models.OperationGet, models.OperationPut}, recs[0].AffectedOperations)
}

func TestDetectLargeItems(t *testing.T) {
	t.Parallel()

	sized := func(op models.OperationType, kb int64) models.OperationRecord {
		r := record(op, "documents", "", 0)
		r.ItemSizeBytes = models.Ptr(kb * 1024)
		return r
	}

	t.Run("both tiers", func(t *testing.T) {
		t.Parallel()

		records := []models.OperationRecord{
			sized(models.OperationPut, 150),
			sized(models.OperationUpdate, 250),
			sized(models.OperationPut, 350),
			sized(models.OperationPut, 50),
			sized(models.OperationGet, 390),
			record(models.OperationPut, "documents", "", 0),
		}

		recs := DetectLargeItems(records)

		require.Len(t, recs, 2)
		assert.Equal(t, models.SeverityInfo, recs[0].Severity)
		assert.Contains(t, recs[0].Details, "2 put/update operations")
		assert.Contains(t, recs[0].Details, "average 200.0KB, max 250.0KB")
		assert.Equal(t, models.SeverityWarning, recs[1].Severity)
		assert.Contains(t, recs[1].Details, "average 350.0KB, max 350.0KB")
	})

	t.Run("tier boundaries", func(t *testing.T) {
		t.Parallel()

		recs := DetectLargeItems([]models.OperationRecord{sized(models.OperationPut, 300)})

		require.Len(t, recs, 1)
		assert.Equal(t, models.SeverityWarning, recs[0].Severity)
		assert.Empty(t, DetectLargeItems([]models.OperationRecord{sized(models.OperationPut, 99)}))
	})
}

func TestDetectNonUniformPartitionKeys(t *testing.T) {
	t.Parallel()

	keyed := func(format func(i int) string) func(int) models.OperationRecord {
		return func(i int) models.OperationRecord {
			r := record(models.OperationPut, "events", "", int64(i))
			r.PartitionKeyValue = format(i)
			return r
		}
	}

	tests := []struct {
		name     string
		records  []models.OperationRecord
		messages []string
	}{
		{
			name:     "sequential ids",
			records:  repeat(25, keyed(func(i int) string { return "user-" + itoa(1000+i) })),
			messages: []string{"Sequential partition keys detected"},
		},
		{
			name:     "iso dates",
			records:  repeat(25, keyed(func(i int) string { return "2026-01-01#" + string(rune('a'+i)) })),
			messages: []string{"Timestamp-based partition keys detected"},
		},
		{
			name:     "epoch millis",
			records:  repeat(25, keyed(func(i int) string { return itoa(1767225600000 + i*1000) })),
			messages: []string{"Timestamp-based partition keys detected"},
		},
		{
			name:     "too few samples",
			records:  repeat(19, keyed(func(i int) string { return "user-" + itoa(1000+i) })),
			messages: nil,
		},
		{
			name:     "well distributed",
			records:  repeat(25, keyed(func(i int) string { return "tenant-" + string(rune('a'+i)) + string(rune('z'-i)) })),
			messages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			recs := DetectNonUniformPartitionKeys(tt.records)

			var messages []string
			for _, r := range recs {
				assert.Equal(t, models.SeverityWarning, r.Severity)
				messages = append(messages, r.Message)
			}
			assert.Equal(t, tt.messages, messages)
		})
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
