package reporters_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dynamo-insights/internal/aggregators"
	collectormocks "dynamo-insights/internal/collectors/mocks"
	"dynamo-insights/internal/exporters"
	exportermocks "dynamo-insights/internal/exporters/mocks"
	"dynamo-insights/internal/models"
	recommendationmocks "dynamo-insights/internal/recommendations/mocks"
	"dynamo-insights/internal/reporters"
	"dynamo-insights/internal/shared/clock"
	"dynamo-insights/internal/shared/svcerrors"
	storemocks "dynamo-insights/internal/stores/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var reportNow = time.Date(2026, 3, 20, 12, 34, 56, 0, time.UTC)

type reporterMocks struct {
	collector       *collectormocks.MockCollector
	recommendations *recommendationmocks.MockRecommendationService
	store           *storemocks.MockDiagnosticsReportStore
	publisher       *exportermocks.MockStatsPublisher
}

func newReporter(t *testing.T, withPublisher bool, interval time.Duration) (reporters.DiagnosticsReporter, *reporterMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &reporterMocks{
		collector:       collectormocks.NewMockCollector(ctrl),
		recommendations: recommendationmocks.NewMockRecommendationService(ctrl),
		store:           storemocks.NewMockDiagnosticsReportStore(ctrl),
		publisher:       exportermocks.NewMockStatsPublisher(ctrl),
	}
	var publisher exporters.StatsPublisher
	if withPublisher {
		publisher = m.publisher
	}
	reporter := reporters.NewDiagnosticsReporter(
		m.collector,
		aggregators.NewStatsRolluper(),
		m.recommendations,
		m.store,
		publisher,
		clock.NewFixed(reportNow),
		reporters.Options{Interval: interval, WindowSize: models.WindowHour},
		zerolog.Nop(),
	)
	return reporter, m
}

var reportRecords = []models.OperationRecord{
	{Operation: models.OperationGet, ResourceName: "users", LatencyMs: 50, ConsumedReadUnits: models.Ptr(1.0)},
	{Operation: models.OperationGet, ResourceName: "users", LatencyMs: 100, ConsumedReadUnits: models.Ptr(1.0)},
}

func TestDiagnosticsReporter_Report_Success(t *testing.T) {
	t.Parallel()

	reporter, m := newReporter(t, true, time.Minute)
	recs := []models.Recommendation{{Severity: models.SeverityInfo, Message: "Batch get opportunity"}}

	m.collector.EXPECT().Snapshot().Return(reportRecords)
	m.recommendations.EXPECT().Analyze(gomock.Any(), reportRecords).Return(recs)
	var stored *models.DiagnosticsReport
	m.store.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, report *models.DiagnosticsReport) error {
		stored = report
		return nil
	})
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	report, err := reporter.Report(context.Background())

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Same(t, stored, report)
	assert.NotEmpty(t, report.ReportID)
	assert.Equal(t, reportNow, report.GeneratedAt)
	assert.Equal(t, time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC), report.WindowStart)
	assert.Equal(t, models.WindowHour, report.WindowSize)
	assert.Equal(t, 2, report.RecordCount)
	assert.Equal(t, recs, report.Recommendations)
	assert.Equal(t, &models.OperationTypeStats{Count: 2, TotalLatencyMs: 150, AvgLatencyMs: 75, TotalReadUnits: 2}, report.Stats.Operations[models.OperationGet])
}

func TestDiagnosticsReporter_Report_WithoutPublisher(t *testing.T) {
	t.Parallel()

	reporter, m := newReporter(t, false, time.Minute)

	m.collector.EXPECT().Snapshot().Return(nil)
	m.recommendations.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return([]models.Recommendation{})
	m.store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	report, err := reporter.Report(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.RecordCount)
}

func TestDiagnosticsReporter_Report_StoreFailed(t *testing.T) {
	t.Parallel()

	reporter, m := newReporter(t, true, time.Minute)

	m.collector.EXPECT().Snapshot().Return(reportRecords)
	m.recommendations.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	report, err := reporter.Report(context.Background())

	require.Error(t, err)
	assert.Nil(t, report)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "RPT_9000", svcErr.Code)
	assert.True(t, svcErr.IsInternalError())
}

func TestDiagnosticsReporter_Report_PublishFailed(t *testing.T) {
	t.Parallel()

	reporter, m := newReporter(t, true, time.Minute)

	m.collector.EXPECT().Snapshot().Return(reportRecords)
	m.recommendations.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("throttled"))

	_, err := reporter.Report(context.Background())

	assert.True(t, svcerrors.HasCode(err, "RPT_9001"))
	assert.ErrorContains(t, err, "throttled")
}

func TestDiagnosticsReporter_StartReportsOnEveryTick(t *testing.T) {
	t.Parallel()

	reporter, m := newReporter(t, false, 10*time.Millisecond)

	reported := make(chan struct{}, 16)
	m.collector.EXPECT().Snapshot().Return(reportRecords).MinTimes(2)
	m.recommendations.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil).MinTimes(2)
	m.store.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, *models.DiagnosticsReport) error {
		select {
		case reported <- struct{}{}:
		default:
		}
		return nil
	}).MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reporter.Start(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-reported:
		case <-time.After(2 * time.Second):
			t.Fatal("reporter did not tick")
		}
	}
	reporter.Stop()
	reporter.Stop()
}
