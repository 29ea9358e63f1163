package http

import (
	"net/http"

	"dynamo-insights/internal/aggregators"
	"dynamo-insights/internal/collectors"
	"dynamo-insights/internal/ingestors"
	"dynamo-insights/internal/recommendations"
	"dynamo-insights/internal/shared/loggers"
	"dynamo-insights/internal/shared/metrics"
	"dynamo-insights/internal/stores"

	"github.com/go-chi/chi/v5"
)

// Services are the application services exposed over HTTP.
type Services struct {
	Collector             collectors.Collector
	IngestionService      ingestors.IngestionService
	StatsService          aggregators.StatsService
	RecommendationService recommendations.RecommendationService
	ReportStore           stores.DiagnosticsReportStore
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services Services, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Post("/operations", errorHandlingAdapter(NewIngestOperationsHandler(services.IngestionService)))
	router.Get("/operations", errorHandlingAdapter(NewExportOperationsHandler(services.Collector)))
	router.Delete("/operations", errorHandlingAdapter(NewResetOperationsHandler(services.Collector)))
	router.Get("/stats", errorHandlingAdapter(NewStatsHandler(services.StatsService)))
	router.Get("/recommendations", errorHandlingAdapter(NewRecommendationsHandler(services.RecommendationService)))
	router.Get("/collector", errorHandlingAdapter(NewCollectorHandler(services.Collector)))
	router.Get("/reports/latest", errorHandlingAdapter(NewLatestReportHandler(services.ReportStore)))
	router.Get("/metrics", metrics.Handler().ServeHTTP)

	return router
}
