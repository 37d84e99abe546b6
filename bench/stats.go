package bench

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the per-case cost distribution of one strategy,
// in nanoseconds.
type Summary struct {
	Count       int
	MeanNanos   float64
	StdDevNanos float64
	MinNanos    float64
	MaxNanos    float64
	P50Nanos    float64
	P90Nanos    float64
	P99Nanos    float64
}

// Summarize computes the distribution of the given per-case samples.
func Summarize(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	s := Summary{
		Count:     len(sorted),
		MeanNanos: stat.Mean(sorted, nil),
		MinNanos:  sorted[0],
		MaxNanos:  sorted[len(sorted)-1],
		P50Nanos:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90Nanos:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
		P99Nanos:  stat.Quantile(0.99, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		s.StdDevNanos = stat.StdDev(sorted, nil)
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("mean %.0fns ±%.0f (min %.0f, p50 %.0f, p90 %.0f, p99 %.0f, max %.0f, n=%d)",
		s.MeanNanos, s.StdDevNanos, s.MinNanos, s.P50Nanos, s.P90Nanos, s.P99Nanos, s.MaxNanos, s.Count)
}
