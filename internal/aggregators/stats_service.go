package aggregators

import (
	"context"

	"dynamo-insights/internal/collectors"
	"dynamo-insights/internal/models"
	"dynamo-insights/internal/shared/loggers"
)

//go:generate mockgen -source=stats_service.go -destination=./mocks/stats_service_mock.go -package=mocks
type StatsService interface {
	// GetStats aggregates a point-in-time snapshot of the collector.
	GetStats(ctx context.Context) *models.TableStats
}

type statsService struct {
	statsRolluper StatsRolluper
	collector     collectors.Collector
}

func NewStatsService(statsRolluper StatsRolluper, collector collectors.Collector) StatsService {
	return &statsService{statsRolluper: statsRolluper, collector: collector}
}

func (s *statsService) GetStats(ctx context.Context) *models.TableStats {
	records := s.collector.Snapshot()
	loggers.Ctx(ctx).Debug().
		Int(loggers.FieldRecordCount, len(records)).
		Msg("started aggregating operation stats")
	return s.statsRolluper.Aggregate(records)
}
