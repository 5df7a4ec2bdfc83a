// Package metrics owns the Prometheus registry for the process and the
// counters shared by features.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dashboard fetch outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

// Metrics bundles the registry with the collectors registered on it.
type Metrics struct {
	Registry *prometheus.Registry

	DashboardFetches *prometheus.CounterVec
	APIRequests      *prometheus.CounterVec
	SummaryCacheHits *prometheus.CounterVec
}

// New creates a registry with the process/Go collectors and the app counters.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		Registry: reg,
		DashboardFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "propertyhub_dashboard_fetch_total",
			Help: "Property list fetches made by the dashboard, by outcome.",
		}, []string{"outcome"}),
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "propertyhub_api_requests_total",
			Help: "Property API requests, by endpoint and status code.",
		}, []string{"endpoint", "code"}),
		SummaryCacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "propertyhub_summary_cache_total",
			Help: "Revenue summary cache lookups, by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.DashboardFetches, m.APIRequests, m.SummaryCacheHits)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
