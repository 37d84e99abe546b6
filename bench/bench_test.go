package bench

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelforge/carvecache"
	"github.com/voxelforge/carvecache/chunk"
	"github.com/voxelforge/carvecache/coord"
	"github.com/voxelforge/carvecache/sphere"
	"github.com/voxelforge/carvecache/testutil"
)

func TestGenerateCasesDeterministic(t *testing.T) {
	a := GenerateCases(testutil.NewRNG(42), 50, 3, 10)
	b := GenerateCases(testutil.NewRNG(42), 50, 3, 10)
	assert.Equal(t, a, b)

	for _, cs := range a {
		assert.Less(t, cs.Sphere.X, coord.Width)
		assert.Less(t, cs.Sphere.Y, coord.Height)
		assert.Less(t, cs.Sphere.Z, coord.Depth)
		assert.GreaterOrEqual(t, cs.Sphere.Radius, 3)
		assert.LessOrEqual(t, cs.Sphere.Radius, 10)
		assert.Equal(t, cs.Sphere.Bounds(), cs.Bounds)
	}
}

func TestStrategiesWriteIdenticalCells(t *testing.T) {
	s := sphere.Sphere{X: 8, Y: 128, Z: 8, Radius: 5}
	cs := Case{Sphere: s, Bounds: s.Bounds()}

	manual := chunk.New()
	Manual{}.Run(cs, manual)

	cached := chunk.New()
	NewCached(nil).Run(cs, cached)

	if diff := cmp.Diff(manual.Snapshot(), cached.Snapshot()); diff != "" {
		t.Errorf("snapshots differ (-manual +cached):\n%s", diff)
	}
	assert.True(t, manual.Touched().Equals(cached.Touched()))
}

func TestCachedReplaysEveryPass(t *testing.T) {
	s := sphere.Sphere{X: 8, Y: 128, Z: 8, Radius: 4}
	cs := Case{Sphere: s, Bounds: s.Bounds()}

	ch := chunk.New()
	NewCached(nil).Run(cs, ch)

	want := chunk.TagLiquidCheck + chunk.TagCarve + chunk.TagDecorate
	assert.Equal(t, want, ch.At(8, 129, 8))
}

func TestValidate(t *testing.T) {
	cases := GenerateCases(testutil.NewRNG(7), 100, 3, 10)
	snap, err := Validate(cases)
	require.NoError(t, err)
	require.Len(t, snap, chunk.Cells)

	// A hundred random spheres carve something.
	nonzero := 0
	for _, v := range snap {
		if v != 0 {
			nonzero++
		}
	}
	assert.Positive(t, nonzero)
}

func TestRunnerSmoke(t *testing.T) {
	r := NewRunner(Config{
		Cases:     25,
		Trials:    4,
		MinRadius: 3,
		MaxRadius: 6,
		Seed:      1,
	})

	out, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Results, 2)

	byName := map[string]Result{}
	for _, res := range out.Results {
		byName[res.Strategy] = res
	}
	require.Contains(t, byName, "manual")
	require.Contains(t, byName, "cached")

	for name, res := range byName {
		assert.Len(t, res.Samples, 4, name)
		assert.Equal(t, 4, res.Summary.Count, name)
		assert.Positive(t, res.Summary.MeanNanos, name)
	}
	assert.Len(t, out.Snapshot, chunk.Cells)
}

func TestRunnerParallelSessions(t *testing.T) {
	r := NewRunner(Config{
		Cases:       10,
		Trials:      3,
		MinRadius:   3,
		MaxRadius:   5,
		Seed:        1,
		Parallelism: 3,
	})

	out, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Results, 2)
	for _, res := range out.Results {
		// 3 sessions x 3 trials each.
		assert.Len(t, res.Samples, 9, res.Strategy)
	}
}

func TestRunnerHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(Config{Cases: 10, Trials: 2, Seed: 1})
	_, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerRecordsCacheMetrics(t *testing.T) {
	m := &carvecache.BasicMetricsCollector{}
	r := NewRunner(Config{
		Cases:   10,
		Trials:  2,
		Seed:    1,
		Metrics: m,
	})

	_, err := r.Run(context.Background())
	require.NoError(t, err)

	// Every cached trial runs one cycle per case: one reset, one grow,
	// three replays.
	assert.Positive(t, m.GrowCount.Load())
	assert.Positive(t, m.ResetCount.Load())
	assert.EqualValues(t, 3*m.ResetCount.Load(), m.ReplayCount.Load())
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{100, 200, 300, 400})
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 250, s.MeanNanos, 1e-9)
	assert.InDelta(t, 100, s.MinNanos, 1e-9)
	assert.InDelta(t, 400, s.MaxNanos, 1e-9)
	assert.Positive(t, s.StdDevNanos)
	assert.GreaterOrEqual(t, s.P90Nanos, s.P50Nanos)
	assert.GreaterOrEqual(t, s.P99Nanos, s.P90Nanos)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}
