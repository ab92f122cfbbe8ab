package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequests   *prometheus.CounterVec
	Searches       *prometheus.CounterVec
	APIErrors      prometheus.Counter
	RequestSeconds *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of handled HTTP requests.",
		}, []string{"method", "route", "status"}),
		Searches: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "places_searches_total",
			Help: "Total number of nearby searches sent upstream, by outcome.",
		}, []string{"status"}),
		APIErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "places_provider_api_errors_total",
			Help: "Total number of errors received from the places provider API.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "places_provider_request_duration_seconds",
			Help:    "Duration of requests to the places provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
	}
}
