package server

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/blcheck/internal/scan"
)

const metricsNamespace = "blcheck"

// Metrics holds the server's Prometheus collectors. Each instance owns its
// registry, so several servers (or tests) never collide on registration.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	activeRequests prometheus.Gauge
	requestsTotal  prometheus.Counter
	responses      *prometheus.CounterVec
	scanDuration   prometheus.Histogram
	scanChecked    prometheus.Histogram
	verdicts       *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with the Go runtime
// collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "active_requests",
			Help:      "Number of HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests received.",
		}),
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "responses_total",
			Help:      "HTTP responses by route pattern and status code.",
		}, []string{"path", "code"}),
		scanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "scan_duration_seconds",
			Help:      "Wall-clock duration of completed blacklist scans.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
		scanChecked: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "scan_checked_servers",
			Help:      "Servers examined per completed scan.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 9),
		}),
		verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "verdicts_total",
			Help:      "Completed scans by verdict.",
		}, []string{"verdict"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.activeRequests,
		m.requestsTotal,
		m.responses,
		m.scanDuration,
		m.scanChecked,
		m.verdicts,
	)
	m.handler = promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests marks the start of a request.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
	m.requestsTotal.Inc()
}

// DecrementActiveRequests marks the end of a request.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// RecordResponse counts a response by path and status code.
func (m *Metrics) RecordResponse(path string, status int) {
	m.responses.WithLabelValues(path, strconv.Itoa(status)).Inc()
}

// RecordScan records the statistics of a completed scan.
func (m *Metrics) RecordScan(res scan.Result) {
	m.scanDuration.Observe(res.Elapsed().Seconds())
	m.scanChecked.Observe(float64(res.CheckedServers()))
	verdict := "untrustworthy"
	if res.Trustworthy() {
		verdict = "trustworthy"
	}
	m.verdicts.WithLabelValues(verdict).Inc()
}

// WritePrometheus serves the registry in the Prometheus text format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
