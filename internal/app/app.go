package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"golang.org/x/sync/errgroup"

	"dynamo-insights/internal/aggregators"
	"dynamo-insights/internal/collectors"
	"dynamo-insights/internal/detectors"
	"dynamo-insights/internal/events"
	"dynamo-insights/internal/exporters"
	internalhttp "dynamo-insights/internal/http"
	"dynamo-insights/internal/ingestors"
	"dynamo-insights/internal/models"
	"dynamo-insights/internal/recommendations"
	"dynamo-insights/internal/reporters"
	"dynamo-insights/internal/shared/clock"
	"dynamo-insights/internal/shared/configs"
	"dynamo-insights/internal/shared/filestorages"
	"dynamo-insights/internal/shared/loggers"
	"dynamo-insights/internal/stores"
	"dynamo-insights/internal/streams"
)

const shutdownTimeout = 10 * time.Second

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	operationRecordConsumer streams.OperationRecordConsumer
	diagnosticsReporter     reporters.DiagnosticsReporter
}

// New creates and initializes a new App instance.
func New(ctx context.Context, config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "dynamo-insights").
		Logger()
	clk := clock.New()

	// Initialize collector
	collectorLogger := loggers.Component(appLogger, "collector")
	collector, err := collectors.NewCollector(collectors.Options{
		Enabled:    config.Collector.Enabled,
		SampleRate: config.Collector.SampleRate,
		Thresholds: collectors.Thresholds{
			SlowQueryMs:    config.Collector.Thresholds.SlowQueryMs,
			HighReadUnits:  config.Collector.Thresholds.HighReadUnits,
			HighWriteUnits: config.Collector.Thresholds.HighWriteUnits,
		},
	}, collectorLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize collector: %w", err)
	}

	// Initialize stream queue
	operationQueue := streams.NewPartitionedQueue[events.OperationRecordedEvent]()
	consumerLogger := loggers.Component(appLogger, "consumer")
	operationRecordConsumer := streams.NewOperationRecordConsumer(operationQueue, collector, consumerLogger)

	// Initialize ingestion service
	operationRecordProducer := streams.NewOperationRecordProducer(operationQueue)
	ingestionService := ingestors.NewIngestionService(operationRecordProducer, clk)

	// Initialize analysis services
	statsRolluper := aggregators.NewStatsRolluper()
	statsService := aggregators.NewStatsService(statsRolluper, collector)
	pricing := detectors.Pricing{
		OnDemandReadUnitPrice:  config.Pricing.OnDemandReadUnitPrice,
		OnDemandWriteUnitPrice: config.Pricing.OnDemandWriteUnitPrice,
		ProvisionedRCUHourly:   config.Pricing.ProvisionedRCUHourly,
		ProvisionedWCUHourly:   config.Pricing.ProvisionedWCUHourly,
	}
	recommendationService := recommendations.NewRecommendationService(collector, recommendations.DefaultDetectors(pricing), clk)

	// Initialize report store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	reportStore := stores.NewDiagnosticsReportStore(fileStorage)

	// Initialize reporter
	var diagnosticsReporter reporters.DiagnosticsReporter
	if config.Reporter.Enabled {
		windowSize, err := models.NewWindowSizeFromString(config.Reporter.WindowSize)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize window size: %w", err)
		}

		var publisher exporters.StatsPublisher
		if config.CloudWatch.Enabled {
			awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.CloudWatch.Region))
			if err != nil {
				return nil, fmt.Errorf("failed to load aws config: %w", err)
			}
			publisher = exporters.NewCloudWatchStatsPublisher(cloudwatch.NewFromConfig(awsCfg), config.CloudWatch.Namespace)
		}

		reporterLogger := loggers.Component(appLogger, "reporter")
		diagnosticsReporter = reporters.NewDiagnosticsReporter(
			collector,
			statsRolluper,
			recommendationService,
			reportStore,
			publisher,
			clk,
			reporters.Options{
				Interval:   time.Duration(config.Reporter.Interval) * time.Second,
				WindowSize: windowSize,
			},
			reporterLogger,
		)
	}

	// Initialize http router
	httpLogger := loggers.Component(appLogger, "http")
	router := internalhttp.NewRouter(internalhttp.Services{
		Collector:             collector,
		IngestionService:      ingestionService,
		StatsService:          statsService,
		RecommendationService: recommendationService,
		ReportStore:           reportStore,
	}, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:                  config,
		appLogger:               appLogger,
		server:                  server,
		operationRecordConsumer: operationRecordConsumer,
		diagnosticsReporter:     diagnosticsReporter,
	}, nil
}

// Run serves HTTP and runs the background workers until ctx is done or the server fails,
// then shuts everything down.
func (app *App) Run(ctx context.Context) error {
	app.appLogger.Info().
		Msgf("Starting dynamo-insights service on port %d (log_level=%s, file_storage_root_dir=%s, reporter_enabled=%t)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.diagnosticsReporter != nil)

	g, gctx := errgroup.WithContext(ctx)

	// start background workers
	app.operationRecordConsumer.Start(gctx)
	if app.diagnosticsReporter != nil {
		app.diagnosticsReporter.Start(gctx)
	}

	g.Go(func() error {
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.shutdown(shutdownCtx)
	})

	return g.Wait()
}

// shutdown gracefully shuts down the application.
func (app *App) shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Wait for background workers to finish
	app.operationRecordConsumer.Stop()
	if app.diagnosticsReporter != nil {
		app.diagnosticsReporter.Stop()
	}
	app.appLogger.Info().Msg("Background workers stopped")

	return nil
}
