// Package bench drives repeated carve trials against the manual and
// cached strategies and summarizes their per-case cost.
//
// A trial applies every case of a shuffled case set through one
// strategy; the harness interleaves the strategies' trials in random
// order so that neither benefits from running on a warm machine. Each
// session owns its cache and chunk, which is the only form of
// parallelism the cache permits.
package bench

import (
	"github.com/voxelforge/carvecache"
	"github.com/voxelforge/carvecache/coord"
	"github.com/voxelforge/carvecache/sphere"
	"github.com/voxelforge/carvecache/testutil"
)

// Defaults mirror the workload the cache was originally tuned on.
const (
	DefaultCases     = 1000
	DefaultTrials    = 500
	DefaultMinRadius = 3
	DefaultMaxRadius = 10
)

// Config describes a benchmark session.
type Config struct {
	// Cases is the number of random carve spheres per trial.
	Cases int
	// Trials is the number of timed runs per strategy.
	Trials int
	// MinRadius and MaxRadius bound the random sphere radii.
	MinRadius int
	MaxRadius int
	// Seed makes the session reproducible. Parallel sessions offset
	// it per session.
	Seed int64
	// Parallelism is the number of independent sessions run
	// concurrently. Values below 2 run a single session.
	Parallelism int

	Logger  *carvecache.Logger
	Metrics carvecache.MetricsCollector
}

func (c Config) withDefaults() Config {
	if c.Cases <= 0 {
		c.Cases = DefaultCases
	}
	if c.Trials <= 0 {
		c.Trials = DefaultTrials
	}
	if c.MinRadius <= 0 {
		c.MinRadius = DefaultMinRadius
	}
	if c.MaxRadius < c.MinRadius {
		c.MaxRadius = DefaultMaxRadius
	}
	if c.Logger == nil {
		c.Logger = carvecache.NoopLogger()
	}
	if c.Metrics == nil {
		c.Metrics = carvecache.NoopMetricsCollector{}
	}
	return c
}

// Case is one carve sphere with its precomputed enumeration box.
type Case struct {
	Sphere sphere.Sphere
	Bounds sphere.Bounds
}

// GenerateCases draws n random carve spheres from rng. Centers range
// over the full chunk; radii over [minRadius, maxRadius].
func GenerateCases(rng *testutil.RNG, n, minRadius, maxRadius int) []Case {
	cases := make([]Case, n)
	for i := range cases {
		s := sphere.Sphere{
			X:      rng.Intn(coord.Width),
			Y:      rng.Intn(coord.Height),
			Z:      rng.Intn(coord.Depth),
			Radius: rng.IntBetween(minRadius, maxRadius),
		}
		cases[i] = Case{Sphere: s, Bounds: s.Bounds()}
	}
	return cases
}
