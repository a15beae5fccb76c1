// Package metrics provides Prometheus instrumentation for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder captures metric events for the application.
type Recorder interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
	RecordSearchResults(total int)
	RecordStatsSnapshot()
}

// Collector is the Prometheus-backed Recorder implementation.
type Collector struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	searchResults  prometheus.Histogram
	statsSnapshots prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with the given
// registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ngon_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ngon_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ngon_search_results",
			Help:    "Number of items returned per search.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
		statsSnapshots: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ngon_stats_snapshots_total",
			Help: "Admin statistics snapshots served.",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.searchResults,
		c.statsSnapshots,
	)

	return c
}

// RecordHTTPRequest records one served request.
func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordSearchResults records the size of one search result set.
func (c *Collector) RecordSearchResults(total int) {
	c.searchResults.Observe(float64(total))
}

// RecordStatsSnapshot records one served statistics snapshot.
func (c *Collector) RecordStatsSnapshot() {
	c.statsSnapshots.Inc()
}

// Handler returns the HTTP handler exposing the registry's metrics.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
