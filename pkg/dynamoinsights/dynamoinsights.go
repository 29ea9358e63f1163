// Package dynamoinsights embeds the telemetry collector and recommendation engine in a process
// that talks to DynamoDB directly.
//
//	insights, err := dynamoinsights.New(dynamoinsights.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	db := insights.Instrument(dynamodb.NewFromConfig(awsCfg))
//	out, err := db.Query(dynamoinsights.WithAccessPattern(ctx, "ordersByCustomer"), input)
//	...
//	for _, rec := range insights.GetRecommendations(ctx) {
//		log.Println(rec.Severity, rec.Message)
//	}
package dynamoinsights

import (
	"context"

	"github.com/rs/zerolog"

	"dynamo-insights/internal/aggregators"
	"dynamo-insights/internal/collectors"
	"dynamo-insights/internal/detectors"
	"dynamo-insights/internal/dynamotelemetry"
	"dynamo-insights/internal/models"
	"dynamo-insights/internal/recommendations"
	"dynamo-insights/internal/shared/clock"
)

type (
	OperationRecord = models.OperationRecord
	OperationType   = models.OperationType
	TableStats      = models.TableStats
	Recommendation  = models.Recommendation
	Severity        = models.Severity
	Category        = models.Category
	Thresholds      = collectors.Thresholds
	Pricing         = detectors.Pricing
	KeySchema       = dynamotelemetry.KeySchema
	DynamoDBAPI     = dynamotelemetry.DynamoDBAPI
)

const (
	OperationGet           = models.OperationGet
	OperationPut           = models.OperationPut
	OperationUpdate        = models.OperationUpdate
	OperationDelete        = models.OperationDelete
	OperationQuery         = models.OperationQuery
	OperationScan          = models.OperationScan
	OperationBatchGet      = models.OperationBatchGet
	OperationBatchWrite    = models.OperationBatchWrite
	OperationTransactWrite = models.OperationTransactWrite
	OperationTransactGet   = models.OperationTransactGet
)

// Config configures an embedded collector.
type Config struct {
	Enabled bool
	// SampleRate is the fraction of operations retained, in [0, 1]. Nil means
	// DefaultSampleRate; use Rate(0) to keep nothing.
	SampleRate *float64
	// Thresholds for slow and high-capacity warnings. The zero value means DefaultThresholds.
	Thresholds Thresholds
	// Pricing drives the capacity mode cost estimates. The zero value means DefaultPricing.
	Pricing Pricing
	// KeySchemas names the key attributes per table for instrumented clients.
	KeySchemas map[string]KeySchema
	// Logger receives threshold and detector failure logs. Nil disables logging.
	Logger *zerolog.Logger
}

// DefaultConfig returns an enabled collector that keeps every operation.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		SampleRate: Rate(collectors.DefaultSampleRate),
		Thresholds: collectors.DefaultThresholds(),
		Pricing:    detectors.DefaultPricing(),
	}
}

// DefaultSampleRate keeps every operation.
const DefaultSampleRate = collectors.DefaultSampleRate

// Rate returns a pointer to v for Config.SampleRate.
func Rate(v float64) *float64 {
	return &v
}

// Insights buffers operation telemetry in memory and analyzes it on demand. It is safe for
// concurrent use.
type Insights struct {
	collector             collectors.Collector
	statsService          aggregators.StatsService
	recommendationService recommendations.RecommendationService
	clock                 clock.Clock
	keySchemas            map[string]KeySchema
	logger                zerolog.Logger
}

// New returns an Insights, or an error when the sample rate is outside [0, 1].
func New(config Config) (*Insights, error) {
	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}
	if config.Pricing == (Pricing{}) {
		config.Pricing = detectors.DefaultPricing()
	}
	if config.Thresholds == (Thresholds{}) {
		config.Thresholds = collectors.DefaultThresholds()
	}
	sampleRate := DefaultSampleRate
	if config.SampleRate != nil {
		sampleRate = *config.SampleRate
	}

	collector, err := collectors.NewCollector(collectors.Options{
		Enabled:    config.Enabled,
		SampleRate: sampleRate,
		Thresholds: config.Thresholds,
	}, logger)
	if err != nil {
		return nil, err
	}

	clk := clock.New()
	return &Insights{
		collector:             collector,
		statsService:          aggregators.NewStatsService(aggregators.NewStatsRolluper(), collector),
		recommendationService: recommendations.NewRecommendationService(collector, recommendations.DefaultDetectors(config.Pricing), clk),
		clock:                 clk,
		keySchemas:            config.KeySchemas,
		logger:                logger,
	}, nil
}

// Record retains a copy of r, subject to the enabled flag and the sample rate.
func (i *Insights) Record(r OperationRecord) {
	i.collector.Record(r.Clone())
}

func (i *Insights) GetStats(ctx context.Context) *TableStats {
	return i.statsService.GetStats(i.logger.WithContext(ctx))
}

// GetRecommendations returns the current findings ordered error, warning, info.
func (i *Insights) GetRecommendations(ctx context.Context) []Recommendation {
	return i.recommendationService.GetRecommendations(i.logger.WithContext(ctx))
}

// Export returns a deep copy of the buffered records.
func (i *Insights) Export() []OperationRecord {
	return i.collector.Export()
}

func (i *Insights) Reset() {
	i.collector.Reset()
}

func (i *Insights) IsEnabled() bool {
	return i.collector.IsEnabled()
}

func (i *Insights) Thresholds() Thresholds {
	return i.collector.Thresholds()
}

// Instrument wraps api so that every successful call is recorded. Requests pass through
// unchanged.
func (i *Insights) Instrument(api DynamoDBAPI) DynamoDBAPI {
	return dynamotelemetry.NewInstrumentedClient(api, i, i.clock, dynamotelemetry.Options{KeySchemas: i.keySchemas})
}

// WithAccessPattern labels the operations issued with ctx through an instrumented client.
func WithAccessPattern(ctx context.Context, name string) context.Context {
	return dynamotelemetry.WithAccessPattern(ctx, name)
}
