package exporters

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"dynamo-insights/internal/models"
	"dynamo-insights/internal/shared/loggers"
)

// maxDatumsPerRequest is the PutMetricData limit on metric data per call.
const maxDatumsPerRequest = 1000

const (
	metricOperationCount      = "OperationCount"
	metricAverageLatency      = "AverageLatency"
	metricConsumedReadUnits   = "ConsumedReadUnits"
	metricConsumedWriteUnits  = "ConsumedWriteUnits"
	metricRecommendationCount = "RecommendationCount"

	dimensionOperation = "Operation"
	dimensionSeverity  = "Severity"
)

// CloudWatchAPI is the part of the CloudWatch client the publisher needs.
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

//go:generate mockgen -source=stats_publisher.go -destination=./mocks/stats_publisher_mock.go -package=mocks
type StatsPublisher interface {
	// Publish sends the report's per-operation stats and recommendation counts as custom metrics.
	Publish(ctx context.Context, report *models.DiagnosticsReport) error
}

type cloudWatchStatsPublisher struct {
	client    CloudWatchAPI
	namespace string
	batchSize int
}

func NewCloudWatchStatsPublisher(client CloudWatchAPI, namespace string) StatsPublisher {
	return &cloudWatchStatsPublisher{client: client, namespace: namespace, batchSize: maxDatumsPerRequest}
}

func (p *cloudWatchStatsPublisher) Publish(ctx context.Context, report *models.DiagnosticsReport) error {
	data := p.buildMetricData(report)
	for start := 0; start < len(data); start += p.batchSize {
		end := min(start+p.batchSize, len(data))
		input := &cloudwatch.PutMetricDataInput{
			Namespace:  aws.String(p.namespace),
			MetricData: data[start:end],
		}
		if _, err := p.client.PutMetricData(ctx, input); err != nil {
			return fmt.Errorf("failed to put metric data: %w", err)
		}
	}

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldReportID, report.ReportID).
		Msgf("published %d metric datums to namespace %s", len(data), p.namespace)
	return nil
}

func (p *cloudWatchStatsPublisher) buildMetricData(report *models.DiagnosticsReport) []types.MetricDatum {
	timestamp := aws.Time(report.GeneratedAt)
	var data []types.MetricDatum

	if report.Stats != nil {
		for _, op := range models.OperationTypes {
			stats, ok := report.Stats.Operations[op]
			if !ok {
				continue
			}
			dimensions := []types.Dimension{{Name: aws.String(dimensionOperation), Value: aws.String(string(op))}}
			data = append(data,
				datum(metricOperationCount, dimensions, float64(stats.Count), types.StandardUnitCount, timestamp),
				datum(metricAverageLatency, dimensions, stats.AvgLatencyMs, types.StandardUnitMilliseconds, timestamp),
				datum(metricConsumedReadUnits, dimensions, stats.TotalReadUnits, types.StandardUnitCount, timestamp),
				datum(metricConsumedWriteUnits, dimensions, stats.TotalWriteUnits, types.StandardUnitCount, timestamp),
			)
		}
	}

	counts := report.CountBySeverity()
	for _, severity := range []models.Severity{models.SeverityError, models.SeverityWarning, models.SeverityInfo} {
		dimensions := []types.Dimension{{Name: aws.String(dimensionSeverity), Value: aws.String(string(severity))}}
		data = append(data, datum(metricRecommendationCount, dimensions, float64(counts[severity]), types.StandardUnitCount, timestamp))
	}
	return data
}

func datum(name string, dimensions []types.Dimension, value float64, unit types.StandardUnit, timestamp *time.Time) types.MetricDatum {
	return types.MetricDatum{
		MetricName: aws.String(name),
		Dimensions: dimensions,
		Value:      aws.Float64(value),
		Unit:       unit,
		Timestamp:  timestamp,
	}
}
