package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the API.
// All methods are safe on a nil receiver so services can run without metrics.
type Metrics struct {
	// Registry owns the collectors below; served at /metrics.
	Registry *prometheus.Registry

	httpDuration        *prometheus.HistogramVec
	httpRequests        *prometheus.CounterVec
	aggregations        *prometheus.CounterVec
	aggregationDuration *prometheus.HistogramVec
}

// NewMetrics creates a private registry and registers every collector in it.
// A private registry lets tests build Metrics more than once.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jva_http_request_duration_seconds",
				Help:    "Duration of HTTP requests by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jva_http_requests_total",
				Help: "Total HTTP requests by route and status code.",
			},
			[]string{"method", "route", "status"},
		),
		aggregations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jva_aggregations_total",
				Help: "Financial projections computed, by projection and outcome.",
			},
			[]string{"projection", "outcome"},
		),
		aggregationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jva_aggregation_duration_seconds",
				Help:    "Time to load and compute a financial projection.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"projection"},
		),
	}
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
	m.httpRequests.WithLabelValues(method, route, status).Inc()
}

// ObserveAggregation records one projection computed by the financial service.
func (m *Metrics) ObserveAggregation(projection string, err error, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.aggregations.WithLabelValues(projection, outcome).Inc()
	m.aggregationDuration.WithLabelValues(projection).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
