// Package metrics exposes the service's Prometheus collectors on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records menu and HTTP metrics.
type Collector struct {
	registry        *prometheus.Registry
	menuItems       prometheus.Gauge
	averagePrice    prometheus.Gauge
	mutations       *prometheus.CounterVec
	validation      *prometheus.CounterVec
	transitions     *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewCollector creates a collector with all metrics registered.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		menuItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "menu_items",
			Help: "Number of items currently on the menu",
		}),
		averagePrice: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "menu_average_price",
			Help: "Average price of the items currently on the menu",
		}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "menu_mutations_total",
			Help: "Menu mutations by operation",
		}, []string{"operation"}),
		validation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "validation_failures_total",
			Help: "Rejected user input by error code",
		}, []string{"code"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "navigation_transitions_total",
			Help: "Completed screen transitions",
		}, []string{"from", "to"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	c.registry.MustRegister(
		c.menuItems,
		c.averagePrice,
		c.mutations,
		c.validation,
		c.transitions,
		c.requests,
		c.requestDuration,
	)

	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordMenu sets the menu gauges after a mutation.
func (c *Collector) RecordMenu(operation string, count int, average float64) {
	c.mutations.WithLabelValues(operation).Inc()
	c.menuItems.Set(float64(count))
	c.averagePrice.Set(average)
}

// RecordValidationFailure counts a rejected input.
func (c *Collector) RecordValidationFailure(code string) {
	c.validation.WithLabelValues(code).Inc()
}

// RecordTransition counts a completed navigation.
func (c *Collector) RecordTransition(from, to string) {
	c.transitions.WithLabelValues(from, to).Inc()
}

// RecordRequest counts an HTTP request and observes its latency.
func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
