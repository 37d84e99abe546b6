package bench

import (
	"github.com/voxelforge/carvecache"
	"github.com/voxelforge/carvecache/chunk"
)

// Strategy is one way of applying the three carve passes of a case to
// a chunk.
type Strategy interface {
	Name() string
	Run(cs Case, ch *chunk.Chunk)
}

// Manual re-enumerates the carved volume for every pass. It is the
// baseline the cache is measured against.
type Manual struct{}

// Name implements Strategy.
func (Manual) Name() string { return "manual" }

// Run implements Strategy.
func (Manual) Run(cs Case, ch *chunk.Chunk) {
	cs.Sphere.ForEach(cs.Bounds, func(x, y, z int) { ch.Write(x, y, z, chunk.TagLiquidCheck) })
	cs.Sphere.ForEach(cs.Bounds, func(x, y, z int) { ch.Write(x, y, z, chunk.TagCarve) })
	cs.Sphere.ForEach(cs.Bounds, func(x, y, z int) { ch.Write(x, y, z, chunk.TagDecorate) })
}

// Cached enumerates each case exactly once into its cache and replays
// the cached points for every pass. The cache lives as long as the
// strategy, so after the largest case has been seen no trial
// allocates.
type Cached struct {
	cache *carvecache.Cache
}

// NewCached creates the cached strategy around c. A nil c gets a
// fresh private cache.
func NewCached(c *carvecache.Cache) *Cached {
	if c == nil {
		c = carvecache.New()
	}
	return &Cached{cache: c}
}

// Name implements Strategy.
func (*Cached) Name() string { return "cached" }

// Run implements Strategy.
func (s *Cached) Run(cs Case, ch *chunk.Chunk) {
	cs.Sphere.Fill(s.cache, cs.Bounds)
	s.cache.ForEach(func(x, y, z int) { ch.Write(x, y, z, chunk.TagLiquidCheck) })
	s.cache.ForEach(func(x, y, z int) { ch.Write(x, y, z, chunk.TagCarve) })
	s.cache.ForEach(func(x, y, z int) { ch.Write(x, y, z, chunk.TagDecorate) })
}
