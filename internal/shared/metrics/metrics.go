package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	FieldErrorCode = "error_code"

	ValueNoError = ""

	Namespace         = "dynamo_insights"
	SubCollector      = "collector"
	SubIngestion      = "ingestion"
	SubStream         = "stream"
	SubRecommendation = "recommendation"
	SubReporter       = "reporter"
	SubHTTP           = "http"
)

type (
	CounterOpts   = prometheus.CounterOpts
	HistogramOpts = prometheus.HistogramOpts
	GaugeOpts     = prometheus.GaugeOpts
)

var (
	DefBuckets         = prometheus.DefBuckets
	ExponentialBuckets = prometheus.ExponentialBuckets
)

// Constructors register with the default registry served by Handler.
var (
	NewCounterVec   = promauto.NewCounterVec
	NewHistogramVec = promauto.NewHistogramVec
	NewGaugeVec     = promauto.NewGaugeVec
)

// Handler serves the default registry, negotiating OpenMetrics when the scraper asks for it.
func Handler() http.Handler {
	return promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
