package reporters

import (
	"context"
	"sync"
	"time"

	"dynamo-insights/internal/aggregators"
	"dynamo-insights/internal/collectors"
	"dynamo-insights/internal/exporters"
	"dynamo-insights/internal/models"
	"dynamo-insights/internal/recommendations"
	"dynamo-insights/internal/shared/clock"
	"dynamo-insights/internal/shared/loggers"
	"dynamo-insights/internal/shared/metrics"
	"dynamo-insights/internal/shared/svcerrors"
	"dynamo-insights/internal/shared/ulid"
	"dynamo-insights/internal/stores"
)

// Options configures a DiagnosticsReporter.
type Options struct {
	Interval   time.Duration
	WindowSize models.WindowSize
}

//go:generate mockgen -source=diagnostics_reporter.go -destination=./mocks/diagnostics_reporter_mock.go -package=mocks
type DiagnosticsReporter interface {
	// Start reports every interval until ctx is done or Stop is called.
	Start(ctx context.Context)
	Stop()
	// Report builds a report from one snapshot of the collector, stores it and publishes it.
	Report(ctx context.Context) (*models.DiagnosticsReport, error)
}

type diagnosticsReporter struct {
	collector             collectors.Collector
	statsRolluper         aggregators.StatsRolluper
	recommendationService recommendations.RecommendationService
	store                 stores.DiagnosticsReportStore
	publisher             exporters.StatsPublisher
	clock                 clock.Clock
	options               Options

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

// NewDiagnosticsReporter wires a reporter. publisher may be nil when metrics export is off.
func NewDiagnosticsReporter(
	collector collectors.Collector,
	statsRolluper aggregators.StatsRolluper,
	recommendationService recommendations.RecommendationService,
	store stores.DiagnosticsReportStore,
	publisher exporters.StatsPublisher,
	clk clock.Clock,
	options Options,
	logger loggers.Logger,
) DiagnosticsReporter {
	return &diagnosticsReporter{
		collector:             collector,
		statsRolluper:         statsRolluper,
		recommendationService: recommendationService,
		store:                 store,
		publisher:             publisher,
		clock:                 clk,
		options:               options,
		stopCh:                make(chan struct{}),
		logger:                logger,
	}
}

func (r *diagnosticsReporter) Start(ctx context.Context) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(r.options.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-r.stopCh:
				return
			case <-ticker.C:
				reportCtx := r.logger.With().
					Str(loggers.FieldRequestID, ulid.NewULID()).
					Logger().WithContext(ctx)
				// failures are logged and counted by Report; the next tick retries
				_, _ = r.Report(reportCtx)
			}
		}
	}()
}

// Stop waits for the reporting loop to exit.
func (r *diagnosticsReporter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

func (r *diagnosticsReporter) Report(ctx context.Context) (*models.DiagnosticsReport, error) {
	start := time.Now()
	defer func() {
		metricReportDurationSeconds.WithLabelValues().Observe(time.Since(start).Seconds())
	}()

	logger := loggers.Ctx(ctx)
	now := r.clock.Now()
	records := r.collector.Snapshot()

	report := &models.DiagnosticsReport{
		ReportID:        ulid.NewULIDAt(now),
		GeneratedAt:     now,
		WindowStart:     r.options.WindowSize.WindowStart(now),
		WindowSize:      r.options.WindowSize,
		RecordCount:     len(records),
		Stats:           r.statsRolluper.Aggregate(records),
		Recommendations: r.recommendationService.Analyze(ctx, records),
	}

	if err := r.store.Upsert(ctx, report); err != nil {
		return nil, r.fail(ctx, errInternalReportStoreFailed(err))
	}

	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, report); err != nil {
			return nil, r.fail(ctx, errInternalReportPublisherFailed(err))
		}
	}

	metricReportsGeneratedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricLastReportRecordCount.WithLabelValues().Set(float64(report.RecordCount))
	logger.Info().
		Str(loggers.FieldReportID, report.ReportID).
		Int(loggers.FieldRecordCount, report.RecordCount).
		Int("recommendation_count", len(report.Recommendations)).
		Msg("diagnostics report generated")
	return report, nil
}

func (r *diagnosticsReporter) fail(ctx context.Context, svcErr *svcerrors.ServiceError) error {
	metricReportsGeneratedTotal.WithLabelValues(svcErr.Code).Inc()
	loggers.Ctx(ctx).Error().
		Err(svcErr.Cause).
		Str(loggers.FieldErrorCode, svcErr.Code).
		Msg("diagnostics report failed")
	return svcErr
}
