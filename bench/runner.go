package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/voxelforge/carvecache"
	"github.com/voxelforge/carvecache/chunk"
	"github.com/voxelforge/carvecache/testutil"
)

// Result holds the timing samples of one strategy.
type Result struct {
	Strategy string
	// Samples are per-case nanoseconds, one sample per trial.
	Samples []float64
	Summary Summary
}

// Outcome is the product of a benchmark session: per-strategy results
// and the validated chunk snapshot of the case set.
type Outcome struct {
	Results  []Result
	Snapshot []int32
}

// Runner executes benchmark sessions.
type Runner struct {
	cfg Config
	log *carvecache.Logger
}

// NewRunner creates a Runner for the given config. Zero-value config
// fields fall back to the defaults of the original workload.
func NewRunner(cfg Config) *Runner {
	cfg = cfg.withDefaults()
	return &Runner{cfg: cfg, log: cfg.Logger}
}

// Run executes the session, or Parallelism independent sessions with
// per-session seeds, and merges their samples. The context cancels
// between trials.
func (r *Runner) Run(ctx context.Context) (*Outcome, error) {
	if r.cfg.Parallelism <= 1 {
		return r.session(ctx, r.cfg.Seed)
	}

	outcomes := make([]*Outcome, r.cfg.Parallelism)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < r.cfg.Parallelism; i++ {
		g.Go(func() error {
			o, err := r.session(ctx, r.cfg.Seed+int64(i))
			if err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			outcomes[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return mergeOutcomes(outcomes), nil
}

func (r *Runner) session(ctx context.Context, seed int64) (*Outcome, error) {
	rng := testutil.NewRNG(seed)
	cases := GenerateCases(rng, r.cfg.Cases, r.cfg.MinRadius, r.cfg.MaxRadius)

	snapshot, err := Validate(cases)
	if err != nil {
		return nil, err
	}

	cache := carvecache.New(
		carvecache.WithLogger(r.cfg.Logger),
		carvecache.WithMetrics(r.cfg.Metrics),
	)
	strategies := []Strategy{Manual{}, NewCached(cache)}

	// Interleave and shuffle the trials so that machine drift over
	// the session hits both strategies alike.
	order := make([]Strategy, 0, len(strategies)*r.cfg.Trials)
	for i := 0; i < r.cfg.Trials; i++ {
		order = append(order, strategies...)
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	ch := chunk.New()
	samples := make(map[string][]float64, len(strategies))
	progress := rate.Sometimes{Interval: time.Second}

	for i, s := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		for _, cs := range cases {
			s.Run(cs, ch)
		}
		perCase := float64(time.Since(start).Nanoseconds()) / float64(len(cases))
		samples[s.Name()] = append(samples[s.Name()], perCase)

		progress.Do(func() {
			r.log.Info("trial complete",
				"seed", seed,
				"trial", i+1,
				"trials", len(order),
			)
		})
	}

	results := make([]Result, 0, len(strategies))
	for _, s := range strategies {
		sm := samples[s.Name()]
		results = append(results, Result{
			Strategy: s.Name(),
			Samples:  sm,
			Summary:  Summarize(sm),
		})
	}
	return &Outcome{Results: results, Snapshot: snapshot}, nil
}

// Validate runs every case once through both strategies on fresh
// chunks and checks that they write identical cells. It returns the
// cached strategy's snapshot for storage alongside the session.
func Validate(cases []Case) ([]int32, error) {
	manual := chunk.New()
	cached := chunk.New()
	m := Manual{}
	c := NewCached(nil)

	for _, cs := range cases {
		m.Run(cs, manual)
		c.Run(cs, cached)
	}

	manualSnap, cachedSnap := manual.Snapshot(), cached.Snapshot()
	for i := range manualSnap {
		if manualSnap[i] != cachedSnap[i] {
			return nil, fmt.Errorf("bench: strategies diverged at cell %d: manual=%d cached=%d", i, manualSnap[i], cachedSnap[i])
		}
	}
	if !manual.Touched().Equals(cached.Touched()) {
		return nil, errors.New("bench: strategies touched different cell sets")
	}
	return cachedSnap, nil
}

func mergeOutcomes(outcomes []*Outcome) *Outcome {
	var names []string
	merged := make(map[string][]float64)
	for _, o := range outcomes {
		for _, res := range o.Results {
			if _, ok := merged[res.Strategy]; !ok {
				names = append(names, res.Strategy)
			}
			merged[res.Strategy] = append(merged[res.Strategy], res.Samples...)
		}
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, Result{
			Strategy: name,
			Samples:  merged[name],
			Summary:  Summarize(merged[name]),
		})
	}
	return &Outcome{Results: results, Snapshot: outcomes[0].Snapshot}
}
