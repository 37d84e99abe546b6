package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/voxelforge/carvecache/bench"
)

// RenderHTML writes a self-contained HTML bar chart comparing the
// per-case cost distribution of every strategy in results.
func RenderHTML(w io.Writer, results []bench.Result) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "carvecache benchmark", Width: "900px", Height: "520px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Sphere generation cost",
			Subtitle: fmt.Sprintf("per-case nanoseconds, %d strategies", len(results)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ns/case"}),
	)

	bar.SetXAxis([]string{"mean", "p50", "p90", "p99", "max"})
	for _, res := range results {
		sm := res.Summary
		bar.AddSeries(res.Strategy, []opts.BarData{
			{Value: sm.MeanNanos},
			{Value: sm.P50Nanos},
			{Value: sm.P90Nanos},
			{Value: sm.P99Nanos},
			{Value: sm.MaxNanos},
		}, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))
	}

	return bar.Render(w)
}
