// Package metrics exposes simulation progress as Prometheus metrics. A
// Registry implements aco.Observer, so it can be passed directly as
// aco.Options.Observer.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all metrics of one run.
type Registry struct {
	// Epoch metrics
	EpochsTotal     prometheus.Counter
	EpochDuration   prometheus.Histogram
	EpochCost       prometheus.Gauge
	BestCost        prometheus.Gauge
	AntsCollected   prometheus.Gauge
	AntsStalled     prometheus.Gauge
	DeliveredTotal  prometheus.Counter
	StallsTotal     *prometheus.CounterVec
	CommoditySupply *prometheus.GaugeVec
	CommodityGap    *prometheus.GaugeVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every metric initialized on a fresh
// prometheus.Registry.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initEpochMetrics()
	r.initCommodityMetrics()
	return r
}

// PrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
