package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instrumentation for the HTTP API.
// Each instance carries its own registry so that tests can construct
// independent Metrics without duplicate registration panics.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestsTotal    *prometheus.CounterVec
	activeRequests   prometheus.Gauge
	searchIterations prometheus.Histogram
	searchDuration   prometheus.Histogram
}

// NewMetrics creates and registers the full metric set.
//
// Returns:
//   - *Metrics: The initialized instrumentation.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fareycalc_requests_total",
			Help: "Total number of HTTP requests handled, by path and status code.",
		}, []string{"path", "code"}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fareycalc_active_requests",
			Help: "Number of HTTP requests currently being handled.",
		}),
		searchIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fareycalc_search_iterations",
			Help:    "Distribution of mediant bisection iteration counts per search.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fareycalc_search_duration_seconds",
			Help:    "Distribution of search wall-clock durations.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	registry.MustRegister(
		m.requestsTotal,
		m.activeRequests,
		m.searchIterations,
		m.searchDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests increments the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests decrements the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// CountRequest records a completed request for the given path and status code.
func (m *Metrics) CountRequest(path, code string) {
	m.requestsTotal.WithLabelValues(path, code).Inc()
}

// ObserveSearch records the iteration count and duration of a finished search.
func (m *Metrics) ObserveSearch(iterations int, d time.Duration) {
	m.searchIterations.Observe(float64(iterations))
	m.searchDuration.Observe(d.Seconds())
}

// WritePrometheus serves the metrics in the Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
