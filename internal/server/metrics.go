package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instrumentation for the analyze API.
type Metrics struct {
	registry *prometheus.Registry

	analysesTotal   *prometheus.CounterVec
	analyzeDuration prometheus.Histogram
	requestErrors   *prometheus.CounterVec
}

// NewMetrics creates a registry with the standard Go and process
// collectors plus the analyze API metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		analysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "finhealth",
			Name:      "analyses_total",
			Help:      "Completed analyses by investor profile band.",
		}, []string{"profile"}),
		analyzeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "finhealth",
			Name:      "analyze_duration_seconds",
			Help:      "Wall time spent computing one report.",
			Buckets:   prometheus.DefBuckets,
		}),
		requestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "finhealth",
			Name:      "request_errors_total",
			Help:      "Failed API requests by HTTP status code.",
		}, []string{"code"}),
	}

	registry.MustRegister(m.analysesTotal, m.analyzeDuration, m.requestErrors)
	return m
}

// Handler returns the /metrics endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
