package aggregators_test

import (
	"context"
	"testing"

	"dynamo-insights/internal/aggregators"
	collectormocks "dynamo-insights/internal/collectors/mocks"
	"dynamo-insights/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatsService_GetStats_AggregatesSnapshot(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := collectormocks.NewMockCollector(ctrl)
	service := aggregators.NewStatsService(aggregators.NewStatsRolluper(), collector)

	collector.EXPECT().Snapshot().Return([]models.OperationRecord{
		{Operation: models.OperationGet, ResourceName: "users", LatencyMs: 50, ConsumedReadUnits: models.Ptr(1.0)},
		{Operation: models.OperationGet, ResourceName: "users", LatencyMs: 100, ConsumedReadUnits: models.Ptr(1.0)},
	}).Times(2)

	stats := service.GetStats(context.Background())
	require.Contains(t, stats.Operations, models.OperationGet)
	assert.Equal(t, 2, stats.Operations[models.OperationGet].Count)
	assert.Equal(t, 75.0, stats.Operations[models.OperationGet].AvgLatencyMs)

	again := service.GetStats(context.Background())
	assert.Equal(t, stats, again)
}

func TestStatsService_GetStats_EmptyCollector(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := collectormocks.NewMockCollector(ctrl)
	service := aggregators.NewStatsService(aggregators.NewStatsRolluper(), collector)

	collector.EXPECT().Snapshot().Return(nil)

	stats := service.GetStats(context.Background())
	assert.Empty(t, stats.Operations)
	assert.Empty(t, stats.AccessPatterns)
}
