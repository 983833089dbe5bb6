package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Upstream X API metrics
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec

	// Business metrics
	DashboardAffiliates        prometheus.Histogram
	AffiliateEnumerationErrors prometheus.Counter
}

// NewMetrics creates and registers all metrics on registry. A nil registry
// gets a fresh one with the Go and process collectors attached.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xaffiliates_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "xaffiliates_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		UpstreamRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xaffiliates_upstream_requests_total",
				Help: "Total number of requests sent to the X API",
			},
			[]string{"code", "method"},
		),
		UpstreamRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "xaffiliates_upstream_request_duration_seconds",
				Help:    "X API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"code", "method"},
		),
		DashboardAffiliates: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "xaffiliates_dashboard_affiliates",
				Help:    "Number of affiliates shown per dashboard render",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		AffiliateEnumerationErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "xaffiliates_affiliate_enumeration_errors_total",
				Help: "Affiliate listings that failed and were rendered empty",
			},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.UpstreamRequestsTotal,
		m.UpstreamRequestDuration,
		m.DashboardAffiliates,
		m.AffiliateEnumerationErrors,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// InstrumentTransport wraps next so every outbound X API call is counted and timed.
func (m *Metrics) InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperCounter(m.UpstreamRequestsTotal,
		promhttp.InstrumentRoundTripperDuration(m.UpstreamRequestDuration, next))
}

// RecordHTTPRequest records one served request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordDashboard records the affiliate count of a rendered dashboard and
// whether enumeration had failed.
func (m *Metrics) RecordDashboard(affiliates int, enumerationFailed bool) {
	m.DashboardAffiliates.Observe(float64(affiliates))
	if enumerationFailed {
		m.AffiliateEnumerationErrors.Inc()
	}
}
