package carvecache

import (
	"github.com/voxelforge/carvecache/coord"
)

// Cache stores the result of one lattice enumeration and replays it
// to any number of consumers in insertion order.
//
// Capacity is monotone: Grow reallocates the backing store only when
// the requested bounding volume exceeds the largest volume ever seen,
// and it reallocates exact-fit. Reset clears the logical count only;
// storage is always retained. One cache instance is meant to live for
// a whole session of reset/grow/add/replay cycles.
//
// Cache is not safe for concurrent use. It has exactly one writer per
// cycle; replays may follow each other freely before the next Reset.
type Cache struct {
	backing   []coord.Packed
	count     int
	maxVolume int

	allocs  uint64
	metrics MetricsCollector
	logger  *Logger
}

// New creates an empty cache. The first sufficient Grow performs the
// initial allocation.
func New(opts ...Option) *Cache {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache{
		metrics: o.metrics,
		logger:  o.logger,
	}
}

// Reset discards the current population. O(1): storage and the grow
// history are untouched, so the next cycle over an equal or smaller
// bounding region allocates nothing.
func (c *Cache) Reset() {
	c.metrics.RecordReset(c.count)
	c.count = 0
}

// Grow makes room for one population cycle over a bounding region of
// the given per-axis extents. If the region's volume exceeds the
// largest ever requested, the backing store is reallocated exact-fit;
// otherwise Grow is a no-op. It must precede the cycle's first Add
// whenever the region could be larger than any seen before.
func (c *Cache) Grow(extentX, extentY, extentZ int) {
	if extentX < 0 || extentY < 0 || extentZ < 0 {
		panic(ErrNegativeExtent)
	}
	volume := extentX * extentY * extentZ
	if volume <= c.maxVolume {
		c.metrics.RecordGrow(volume, false)
		return
	}
	c.backing = make([]coord.Packed, volume)
	c.maxVolume = volume
	c.allocs++
	c.metrics.RecordGrow(volume, true)
	c.logger.Debug("backing store reallocated",
		"volume", volume,
		"allocs", c.allocs,
	)
}

// Add appends a lattice point. The point must lie in the coord
// packing domain, and the cycle must stay within the bound set by the
// preceding Grow: adding past capacity panics with
// ErrCapacityExceeded.
func (c *Cache) Add(x, y, z int) {
	if c.count == len(c.backing) {
		panic(ErrCapacityExceeded)
	}
	c.backing[c.count] = coord.Pack(x, y, z)
	c.count++
}

// ForEach invokes fn once per cached point, in insertion order. It
// never mutates the cache; consecutive replays over the same
// population are identical.
func (c *Cache) ForEach(fn func(x, y, z int)) {
	for _, p := range c.backing[:c.count] {
		fn(p.Unpack())
	}
	c.metrics.RecordReplay(c.count)
}

// Len returns the number of points in the current population.
func (c *Cache) Len() int {
	return c.count
}

// Capacity returns the current size of the backing store in points.
func (c *Cache) Capacity() int {
	return len(c.backing)
}

// Allocs returns the number of backing-store reallocations performed
// over the cache's lifetime. Steady-state cycles keep it constant;
// tests pin the no-realloc property on it.
func (c *Cache) Allocs() uint64 {
	return c.allocs
}
