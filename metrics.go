package carvecache

import "sync/atomic"

// MetricsCollector receives counters from the cache's lifecycle
// operations. Implement it to feed a monitoring system; every method
// is called synchronously on the cycle's writer, so implementations
// must be cheap and must not allocate if the zero-allocation
// guarantee matters to the caller.
type MetricsCollector interface {
	// RecordGrow is called on every Grow with the requested bounding
	// volume and whether the call reallocated the backing store.
	RecordGrow(volume int, reallocated bool)

	// RecordReset is called on every Reset with the number of points
	// the discarded population held.
	RecordReset(points int)

	// RecordReplay is called after every ForEach with the number of
	// points replayed.
	RecordReplay(points int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, bool) {}
func (NoopMetricsCollector) RecordReset(int)      {}
func (NoopMetricsCollector) RecordReplay(int)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for tests and debugging without an external monitoring
// system.
type BasicMetricsCollector struct {
	GrowCount     atomic.Int64
	ReallocCount  atomic.Int64
	ResetCount    atomic.Int64
	ReplayCount   atomic.Int64
	PointsCached  atomic.Int64
	PointsReplayed atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(volume int, reallocated bool) {
	b.GrowCount.Add(1)
	if reallocated {
		b.ReallocCount.Add(1)
	}
}

// RecordReset implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReset(points int) {
	b.ResetCount.Add(1)
	b.PointsCached.Add(int64(points))
}

// RecordReplay implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReplay(points int) {
	b.ReplayCount.Add(1)
	b.PointsReplayed.Add(int64(points))
}
