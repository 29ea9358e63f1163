package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	aggregatormocks "dynamo-insights/internal/aggregators/mocks"
	"dynamo-insights/internal/collectors"
	collectormocks "dynamo-insights/internal/collectors/mocks"
	"dynamo-insights/internal/models"
	recommendationmocks "dynamo-insights/internal/recommendations/mocks"
	"dynamo-insights/internal/shared/svcerrors"
	"dynamo-insights/internal/stores"
	storemocks "dynamo-insights/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatsHandler_Handle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockStatsService := aggregatormocks.NewMockStatsService(ctrl)
	stats := models.NewEmptyTableStats()
	stats.Operations[models.OperationGet] = &models.OperationTypeStats{Count: 2, TotalLatencyMs: 150, AvgLatencyMs: 75, TotalReadUnits: 2}
	mockStatsService.EXPECT().GetStats(gomock.Any()).Return(stats)

	rr := httptest.NewRecorder()
	err := NewStatsHandler(mockStatsService).Handle(rr, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"operations": {"get": {"count": 2, "totalLatencyMs": 150, "avgLatencyMs": 75, "totalReadUnits": 2, "totalWriteUnits": 0}},
		"accessPatterns": {}
	}`, rr.Body.String())
}

func TestRecommendationsHandler_Handle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockRecommendationService := recommendationmocks.NewMockRecommendationService(ctrl)
	mockRecommendationService.EXPECT().GetRecommendations(gomock.Any()).Return([]models.Recommendation{})

	rr := httptest.NewRecorder()
	err := NewRecommendationsHandler(mockRecommendationService).Handle(rr, httptest.NewRequest(http.MethodGet, "/recommendations", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"recommendations": []}`, rr.Body.String())
}

func TestCollectorHandler_Handle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockCollector := collectormocks.NewMockCollector(ctrl)
	mockCollector.EXPECT().IsEnabled().Return(true)
	mockCollector.EXPECT().Thresholds().Return(collectors.DefaultThresholds())

	rr := httptest.NewRecorder()
	err := NewCollectorHandler(mockCollector).Handle(rr, httptest.NewRequest(http.MethodGet, "/collector", nil))

	require.NoError(t, err)
	assert.JSONEq(t, `{"enabled": true, "thresholds": {"slowQueryMs": 1000, "highReadUnits": 100, "highWriteUnits": 100}}`, rr.Body.String())
}

func TestLatestReportHandler_Handle(t *testing.T) {
	t.Parallel()

	report := &models.DiagnosticsReport{
		ReportID:        "01HREPORT",
		GeneratedAt:     time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC),
		WindowStart:     time.Date(2025, 12, 28, 18, 0, 0, 0, time.UTC),
		WindowSize:      models.WindowHour,
		RecordCount:     4,
		Stats:           models.NewEmptyTableStats(),
		Recommendations: []models.Recommendation{},
	}

	tests := []struct {
		name         string
		report       *models.DiagnosticsReport
		err          error
		wantStatus   int
		wantCode     string
		wantCategory string
	}{
		{name: "latest report", report: report, wantStatus: http.StatusOK},
		{name: "no report yet", err: stores.ErrDiagnosticsReportNotFound, wantCode: errReportNotFound, wantCategory: "not_found"},
		{name: "store failure", err: assert.AnError, wantCode: errReportLoad, wantCategory: "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockStore := storemocks.NewMockDiagnosticsReportStore(ctrl)
			mockStore.EXPECT().Latest(gomock.Any()).Return(tt.report, tt.err)

			rr := httptest.NewRecorder()
			err := NewLatestReportHandler(mockStore).Handle(rr, httptest.NewRequest(http.MethodGet, "/reports/latest", nil))

			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, rr.Code)
				assert.Contains(t, rr.Body.String(), `"reportId":"01HREPORT"`)
				return
			}
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, svcErr.Code)
			assert.Equal(t, tt.wantCategory, svcErr.Category)
		})
	}
}
