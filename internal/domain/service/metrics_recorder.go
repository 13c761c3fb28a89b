package service

import "time"

// MetricsRecorder collects client-side operational metrics.
type MetricsRecorder interface {
	RecordBackendRequest(operation string, statusCode int, latency time.Duration)
	RecordCacheLookup(collection string, hit bool)
	RecordCacheInvalidation(collection string)
	RecordRealtimeEvent(table string, changeType string)
	RecordOrphanedImage()
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

func (NoopMetrics) RecordBackendRequest(string, int, time.Duration) {}
func (NoopMetrics) RecordCacheLookup(string, bool)                  {}
func (NoopMetrics) RecordCacheInvalidation(string)                  {}
func (NoopMetrics) RecordRealtimeEvent(string, string)              {}
func (NoopMetrics) RecordOrphanedImage()                            {}
