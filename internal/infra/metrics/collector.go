// Package metrics collects client-side Prometheus metrics and exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"todo/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "todo"

// Collector implements service.MetricsRecorder on Prometheus vectors.
type Collector struct {
	backendRequests  *prometheus.CounterVec
	backendLatency   *prometheus.HistogramVec
	cacheLookups     *prometheus.CounterVec
	cacheInvalidates *prometheus.CounterVec
	realtimeEvents   *prometheus.CounterVec
	orphanedImages   prometheus.Counter
}

var _ service.MetricsRecorder = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		backendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Backend calls by operation and response status.",
		}, []string{"operation", "status_code"}),
		backendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Backend call latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Query cache lookups by collection and result.",
		}, []string{"collection", "result"}),
		cacheInvalidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_invalidations_total",
			Help:      "Query cache entries marked stale by collection.",
		}, []string{"collection"}),
		realtimeEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "realtime_events_total",
			Help:      "Realtime change notifications applied to the cache.",
		}, []string{"table", "type"}),
		orphanedImages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orphaned_images_total",
			Help:      "Stored images whose removal failed after their todo was deleted or changed.",
		}),
	}

	reg.MustRegister(
		c.backendRequests,
		c.backendLatency,
		c.cacheLookups,
		c.cacheInvalidates,
		c.realtimeEvents,
		c.orphanedImages,
	)

	return c
}

// RecordBackendRequest counts one backend call. statusCode 0 means the call never got a response.
func (c *Collector) RecordBackendRequest(operation string, statusCode int, latency time.Duration) {
	c.backendRequests.WithLabelValues(operation, strconv.Itoa(statusCode)).Inc()
	c.backendLatency.WithLabelValues(operation).Observe(latency.Seconds())
}

// RecordCacheLookup counts a hit or miss on collection.
func (c *Collector) RecordCacheLookup(collection string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.cacheLookups.WithLabelValues(collection, result).Inc()
}

// RecordCacheInvalidation counts one invalidated entry.
func (c *Collector) RecordCacheInvalidation(collection string) {
	c.cacheInvalidates.WithLabelValues(collection).Inc()
}

// RecordRealtimeEvent counts one applied change notification.
func (c *Collector) RecordRealtimeEvent(table string, changeType string) {
	c.realtimeEvents.WithLabelValues(table, changeType).Inc()
}

// RecordOrphanedImage counts one image left behind in storage.
func (c *Collector) RecordOrphanedImage() {
	c.orphanedImages.Inc()
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
