package aggregators

import (
	"dynamo-insights/internal/models"
)

//go:generate mockgen -source=stats_rolluper.go -destination=./mocks/stats_rolluper_mock.go -package=mocks
type StatsRolluper interface {
	// Rollup mutates stats by accumulating record into it.
	Rollup(stats *models.TableStats, record *models.OperationRecord)
	// Aggregate rolls every record, in order, into fresh stats.
	Aggregate(records []models.OperationRecord) *models.TableStats
}

type statsRolluper struct{}

func NewStatsRolluper() StatsRolluper {
	return &statsRolluper{}
}

func (a *statsRolluper) Aggregate(records []models.OperationRecord) *models.TableStats {
	stats := models.NewEmptyTableStats()
	for i := range records {
		a.Rollup(stats, &records[i])
	}
	return stats
}

func (a *statsRolluper) Rollup(stats *models.TableStats, record *models.OperationRecord) {
	opStats, exists := stats.Operations[record.Operation]
	if !exists {
		opStats = &models.OperationTypeStats{}
		stats.Operations[record.Operation] = opStats
	}
	opStats.Count++
	opStats.TotalLatencyMs += record.LatencyMs
	opStats.AvgLatencyMs = opStats.TotalLatencyMs / float64(opStats.Count)
	opStats.TotalReadUnits += record.ReadUnits()
	opStats.TotalWriteUnits += record.WriteUnits()

	if record.AccessPattern == "" {
		return
	}

	patternStats, exists := stats.AccessPatterns[record.AccessPattern]
	if !exists {
		patternStats = &models.AccessPatternStats{}
		stats.AccessPatterns[record.AccessPattern] = patternStats
	}
	patternStats.Count++
	n := float64(patternStats.Count)
	// avg_n = (avg_{n-1}*(n-1) + x_n) / n
	patternStats.AvgLatencyMs = (patternStats.AvgLatencyMs*(n-1) + record.LatencyMs) / n
	patternStats.AvgItemsReturned = (patternStats.AvgItemsReturned*(n-1) + float64(record.ItemCount)) / n
}
