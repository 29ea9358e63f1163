package http

import (
	"errors"
	"net/http"

	"dynamo-insights/internal/aggregators"
	"dynamo-insights/internal/collectors"
	"dynamo-insights/internal/models"
	"dynamo-insights/internal/recommendations"
	"dynamo-insights/internal/shared/svcerrors"
	"dynamo-insights/internal/stores"
)

func NewStatsHandler(statsService aggregators.StatsService) AppHttpHandler {
	return AppHttpHandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
		return writeJSON(w, http.StatusOK, statsService.GetStats(r.Context()))
	})
}

// RecommendationsResponse is the body of GET /recommendations.
type RecommendationsResponse struct {
	Recommendations []models.Recommendation `json:"recommendations"`
}

func NewRecommendationsHandler(recommendationService recommendations.RecommendationService) AppHttpHandler {
	return AppHttpHandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
		recs := recommendationService.GetRecommendations(r.Context())
		return writeJSON(w, http.StatusOK, RecommendationsResponse{Recommendations: recs})
	})
}

// CollectorResponse is the body of GET /collector.
type CollectorResponse struct {
	Enabled    bool                  `json:"enabled"`
	Thresholds collectors.Thresholds `json:"thresholds"`
}

func NewCollectorHandler(collector collectors.Collector) AppHttpHandler {
	return AppHttpHandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
		return writeJSON(w, http.StatusOK, CollectorResponse{
			Enabled:    collector.IsEnabled(),
			Thresholds: collector.Thresholds(),
		})
	})
}

// NewLatestReportHandler serves GET /reports/latest from the report store.
func NewLatestReportHandler(store stores.DiagnosticsReportStore) AppHttpHandler {
	return AppHttpHandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
		report, err := store.Latest(r.Context())
		if errors.Is(err, stores.ErrDiagnosticsReportNotFound) {
			return svcerrors.NewNotFoundError(errReportNotFound, "no diagnostics report has been generated yet", err)
		}
		if err != nil {
			return svcerrors.NewInternalError(errReportLoad, err)
		}
		return writeJSON(w, http.StatusOK, report)
	})
}
