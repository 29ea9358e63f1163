package recommendations

import (
	"context"
	"fmt"
	"runtime/debug"
	"sort"
	"sync"

	"dynamo-insights/internal/collectors"
	"dynamo-insights/internal/detectors"
	"dynamo-insights/internal/models"
	"dynamo-insights/internal/shared/clock"
	"dynamo-insights/internal/shared/loggers"
	"dynamo-insights/internal/shared/svcerrors"
)

//go:generate mockgen -source=recommendation_service.go -destination=./mocks/recommendation_service_mock.go -package=mocks
type RecommendationService interface {
	// GetRecommendations runs every registered detector over one snapshot of the collector and
	// returns their findings ordered error, warning, info. The result is never nil.
	GetRecommendations(ctx context.Context) []models.Recommendation
	// Analyze runs the detectors over the given records instead of the live buffer.
	Analyze(ctx context.Context, records []models.OperationRecord) []models.Recommendation
}

type recommendationService struct {
	collector collectors.Collector
	detectors []detectors.Detector
	clock     clock.Clock
}

func NewRecommendationService(collector collectors.Collector, registry []detectors.Detector, clk clock.Clock) RecommendationService {
	return &recommendationService{
		collector: collector,
		detectors: registry,
		clock:     clk,
	}
}

func (s *recommendationService) GetRecommendations(ctx context.Context) []models.Recommendation {
	return s.Analyze(ctx, s.collector.Snapshot())
}

func (s *recommendationService) Analyze(ctx context.Context, records []models.OperationRecord) []models.Recommendation {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Int(loggers.FieldRecordCount, len(records)).
		Msg("started running detectors")

	in := &detectors.Input{Records: records, Now: s.clock.Now()}
	recs := make([]models.Recommendation, 0)
	for _, detector := range s.detectors {
		recs = append(recs, s.runDetector(ctx, detector, in)...)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Severity.Rank() < recs[j].Severity.Rank()
	})

	recordCurrent(recs)
	return recs
}

var currentMu sync.Mutex

// recordCurrent replaces the gauge series with the counts of one analysis.
func recordCurrent(recs []models.Recommendation) {
	currentMu.Lock()
	defer currentMu.Unlock()

	metricRecommendationsCurrent.Reset()
	for i := range recs {
		metricRecommendationsCurrent.WithLabelValues(string(recs[i].Severity), string(recs[i].Category)).Inc()
	}
}

// runDetector isolates a detector so that a panic only empties that detector's contribution.
func (s *recommendationService) runDetector(ctx context.Context, detector detectors.Detector, in *detectors.Input) (recs []models.Recommendation) {
	defer func() {
		if r := recover(); r != nil {
			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)

			loggers.Ctx(ctx).Error().
				Str(loggers.FieldDetector, detector.Name()).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Err(panicErr).
				Msg("detector panic recovered")
			metricDetectorFailuresTotal.WithLabelValues(detector.Name()).Inc()
			recs = nil
		}
	}()

	return detector.Detect(in)
}
