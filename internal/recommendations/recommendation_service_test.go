package recommendations

import (
	"context"
	"testing"
	"time"

	collectormocks "dynamo-insights/internal/collectors/mocks"
	"dynamo-insights/internal/detectors"
	"dynamo-insights/internal/models"
	"dynamo-insights/internal/shared/clock"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

func staticDetector(name string, recs ...models.Recommendation) detectors.Detector {
	return detectors.New(name, func(*detectors.Input) []models.Recommendation { return recs })
}

func assertSeverityOrdered(t *testing.T, recs []models.Recommendation) {
	t.Helper()
	for i := 1; i < len(recs); i++ {
		assert.LessOrEqual(t, recs[i-1].Severity.Rank(), recs[i].Severity.Rank(),
			"recommendation %d (%s) precedes %d (%s)", i-1, recs[i-1].Severity, i, recs[i].Severity)
	}
}

func TestRecommendationService_GetRecommendations_SortsStablyBySeverity(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	collector := collectormocks.NewMockCollector(ctrl)
	collector.EXPECT().Snapshot().Return(nil)

	registry := []detectors.Detector{
		staticDetector("first", models.Recommendation{Severity: models.SeverityInfo, Message: "info-a"}),
		staticDetector("second",
			models.Recommendation{Severity: models.SeverityWarning, Message: "warning-a"},
			models.Recommendation{Severity: models.SeverityInfo, Message: "info-b"},
		),
		staticDetector("third", models.Recommendation{Severity: models.SeverityError, Message: "error-a"}),
		staticDetector("fourth", models.Recommendation{Severity: models.SeverityWarning, Message: "warning-b"}),
	}
	service := NewRecommendationService(collector, registry, clock.NewFixed(fixedNow))

	recs := service.GetRecommendations(context.Background())

	var messages []string
	for _, r := range recs {
		messages = append(messages, r.Message)
	}
	assert.Equal(t, []string{"error-a", "warning-a", "warning-b", "info-a", "info-b"}, messages)
}

func TestRecommendationService_GetRecommendations_PanickingDetectorIsIsolated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	collector := collectormocks.NewMockCollector(ctrl)
	collector.EXPECT().Snapshot().Return([]models.OperationRecord{{Operation: models.OperationGet, ResourceName: "users"}})

	registry := []detectors.Detector{
		staticDetector("before", models.Recommendation{Severity: models.SeverityInfo, Message: "before"}),
		detectors.New("broken", func(in *detectors.Input) []models.Recommendation {
			var report *models.HotPartitionReport
			_ = report.Bucket
			return nil
		}),
		detectors.New("broken-error", func(*detectors.Input) []models.Recommendation {
			panic(assert.AnError)
		}),
		staticDetector("after", models.Recommendation{Severity: models.SeverityInfo, Message: "after"}),
	}
	service := NewRecommendationService(collector, registry, clock.NewFixed(fixedNow))

	var recs []models.Recommendation
	require.NotPanics(t, func() {
		recs = service.GetRecommendations(context.Background())
	})

	require.Len(t, recs, 2)
	assert.Equal(t, "before", recs[0].Message)
	assert.Equal(t, "after", recs[1].Message)
}

func TestRecommendationService_GetRecommendations_EmptyBuffer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	collector := collectormocks.NewMockCollector(ctrl)
	collector.EXPECT().Snapshot().Return(nil)

	service := NewRecommendationService(collector, DefaultDetectors(detectors.DefaultPricing()), clock.NewFixed(fixedNow))

	recs := service.GetRecommendations(context.Background())

	require.NotNil(t, recs)
	assert.Empty(t, recs, "capacity advice needs at least one record")
}

func TestRecommendationService_GetRecommendations_PassesClockToDetectors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	collector := collectormocks.NewMockCollector(ctrl)
	records := []models.OperationRecord{
		{Operation: models.OperationQuery, ResourceName: "orders", IndexName: "byStatus", Timestamp: fixedNow.Add(-8 * 24 * time.Hour).UnixMilli()},
		{Operation: models.OperationQuery, ResourceName: "orders", IndexName: "byCustomer", Timestamp: fixedNow.Add(-6 * 24 * time.Hour).UnixMilli()},
	}
	collector.EXPECT().Snapshot().Return(records)

	registry := []detectors.Detector{detectors.New(DetectorUnusedIndex, unusedIndexRecommendations)}
	service := NewRecommendationService(collector, registry, clock.NewFixed(fixedNow))

	recs := service.GetRecommendations(context.Background())

	require.Len(t, recs, 1)
	assert.Equal(t, "Index byStatus on orders appears unused", recs[0].Message)
	assert.Equal(t, models.SeverityInfo, recs[0].Severity)
	assert.Equal(t, models.CategoryCost, recs[0].Category)
}

func TestRecommendationService_Analyze_DefaultDetectors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	collector := collectormocks.NewMockCollector(ctrl)
	service := NewRecommendationService(collector, DefaultDetectors(detectors.DefaultPricing()), clock.NewFixed(fixedNow))

	base := fixedNow.UnixMilli()
	var records []models.OperationRecord
	for i := 0; i < 10; i++ {
		records = append(records, models.OperationRecord{
			Operation: models.OperationGet, ResourceName: "users", Timestamp: base + int64(i)*50, ConsumedReadUnits: models.Ptr(0.5),
		})
	}
	records = append(records, models.OperationRecord{
		Operation: models.OperationScan, ResourceName: "orders", Timestamp: base, ItemCount: 1, ScannedCount: models.Ptr(100),
	})

	recs := service.Analyze(context.Background(), records)

	assertSeverityOrdered(t, recs)

	byMessage := make(map[string]models.Recommendation)
	for _, r := range recs {
		byMessage[r.Message] = r
	}
	require.Contains(t, byMessage, "Batch get opportunity")
	assert.Contains(t, byMessage["Batch get opportunity"].Details, "10 individual get operations")
	require.Contains(t, byMessage, "Hot partition on users:primary (90.9% of traffic)")
	assert.Equal(t, models.SeverityError, byMessage["Hot partition on users:primary (90.9% of traffic)"].Severity)
	require.Contains(t, byMessage, "Inefficient scan on orders (1.0% efficiency)")
	assert.Equal(t, models.SeverityError, byMessage["Inefficient scan on orders (1.0% efficiency)"].Severity)
	require.Len(t, recs, 4)
	assert.Equal(t, models.CategoryHotPartition, recs[0].Category)
	assert.Equal(t, models.CategoryPerformance, recs[1].Category)
	assert.Equal(t, models.CategoryCapacity, recs[2].Category, "capacity runs before batch detection")
	assert.Equal(t, "Consider provisioned capacity mode", recs[2].Message)
	assert.Equal(t, "Batch get opportunity", recs[3].Message)
}

func TestHotPartitionRecommendations_Severity(t *testing.T) {
	t.Parallel()

	var records []models.OperationRecord
	for i := 0; i < 55; i++ {
		records = append(records, models.OperationRecord{Operation: models.OperationQuery, ResourceName: "orders", IndexName: "GSI1"})
	}
	for i := 0; i < 31; i++ {
		records = append(records, models.OperationRecord{Operation: models.OperationQuery, ResourceName: "orders", IndexName: "GSI2"})
	}
	for i := 0; i < 14; i++ {
		records = append(records, models.OperationRecord{Operation: models.OperationGet, ResourceName: "orders"})
	}

	recs := hotPartitionRecommendations(&detectors.Input{Records: records, Now: fixedNow})

	require.Len(t, recs, 3)
	assert.Equal(t, models.SeverityError, recs[0].Severity)
	assert.Contains(t, recs[0].SuggestedAction, multiAttributeKeySuggestion)
	assert.Equal(t, models.SeverityWarning, recs[1].Severity)
	assert.Contains(t, recs[1].SuggestedAction, multiAttributeKeySuggestion)
	assert.Equal(t, models.SeverityInfo, recs[2].Severity)
	assert.Equal(t, "Hot partition on orders:primary (14.0% of traffic)", recs[2].Message)
	assert.NotContains(t, recs[2].SuggestedAction, multiAttributeKeySuggestion)
	for _, r := range recs {
		assert.Equal(t, models.CategoryHotPartition, r.Category)
	}
}

func TestScanEfficiencyRecommendations_Severity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		itemCount    int
		wantSeverity models.Severity
	}{
		{name: "below five percent", itemCount: 4, wantSeverity: models.SeverityError},
		{name: "exactly five percent", itemCount: 5, wantSeverity: models.SeverityWarning},
		{name: "below ten percent", itemCount: 9, wantSeverity: models.SeverityWarning},
		{name: "exactly ten percent", itemCount: 10, wantSeverity: models.SeverityInfo},
		{name: "below twenty percent", itemCount: 19, wantSeverity: models.SeverityInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			records := []models.OperationRecord{{
				Operation: models.OperationScan, ResourceName: "orders", ItemCount: tt.itemCount, ScannedCount: models.Ptr(100),
			}}

			recs := scanEfficiencyRecommendations(&detectors.Input{Records: records, Now: fixedNow})

			require.Len(t, recs, 1)
			assert.Equal(t, tt.wantSeverity, recs[0].Severity)
			assert.Equal(t, []models.OperationType{models.OperationScan}, recs[0].AffectedOperations)
		})
	}
}

func TestCapacityModeRecommendations(t *testing.T) {
	t.Parallel()

	assert.Empty(t, capacityModeRecommendations(&detectors.Input{Now: fixedNow}, detectors.DefaultPricing()))

	records := []models.OperationRecord{{Operation: models.OperationGet, ResourceName: "users", Timestamp: fixedNow.UnixMilli()}}
	recs := capacityModeRecommendations(&detectors.Input{Records: records, Now: fixedNow}, detectors.DefaultPricing())

	require.Len(t, recs, 1)
	assert.Equal(t, models.SeverityInfo, recs[0].Severity)
	assert.Equal(t, models.CategoryCapacity, recs[0].Category)
	assert.Equal(t, "Consider on-demand capacity mode", recs[0].Message)
	assert.Contains(t, recs[0].Details, "Estimated monthly cost")
}

func TestDefaultDetectors_Order(t *testing.T) {
	t.Parallel()

	var names []string
	for _, d := range DefaultDetectors(detectors.DefaultPricing()) {
		names = append(names, d.Name())
	}

	assert.Equal(t, []string{
		DetectorHotPartition,
		DetectorScanEfficiency,
		DetectorUnusedIndex,
		DetectorCapacityMode,
		DetectorBatchOpportunity,
		DetectorConcatenatedKey,
		DetectorProjection,
		DetectorFetchingToFilter,
		DetectorSequentialWrite,
		DetectorReadBeforeWrite,
		DetectorLargeItem,
		DetectorUniformPartition,
	}, names)
}

// Not parallel: the gauge is process wide.
func TestRecommendationService_GetRecommendations_RepeatedCallsKeepGaugeStable(t *testing.T) {
	ctrl := gomock.NewController(t)
	collector := collectormocks.NewMockCollector(ctrl)
	collector.EXPECT().Snapshot().Return(nil).AnyTimes()

	service := NewRecommendationService(collector, []detectors.Detector{
		staticDetector("first",
			models.Recommendation{Severity: models.SeverityWarning, Category: models.CategoryHotPartition},
			models.Recommendation{Severity: models.SeverityWarning, Category: models.CategoryHotPartition},
		),
		staticDetector("second",
			models.Recommendation{Severity: models.SeverityInfo, Category: models.CategoryCapacity},
		),
	}, clock.NewFixed(fixedNow))

	for range 3 {
		service.GetRecommendations(context.Background())
	}

	hot := metricRecommendationsCurrent.WithLabelValues(string(models.SeverityWarning), string(models.CategoryHotPartition))
	capacity := metricRecommendationsCurrent.WithLabelValues(string(models.SeverityInfo), string(models.CategoryCapacity))
	assert.InDelta(t, 2, testutil.ToFloat64(hot), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(capacity), 0)

	service.Analyze(context.Background(), nil)
	assert.Equal(t, 0, testutil.CollectAndCount(metricRecommendationsCurrent), "an analysis without findings clears the gauge")
}
