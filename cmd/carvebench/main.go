// Command carvebench runs a carve-sphere benchmark session comparing
// the manual and cached strategies, prints per-strategy summaries and
// optionally persists or renders the results.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/voxelforge/carvecache"
	"github.com/voxelforge/carvecache/bench"
	"github.com/voxelforge/carvecache/bench/report"
)

func main() {
	var (
		cases       = flag.Int("cases", bench.DefaultCases, "random carve spheres per trial")
		trials      = flag.Int("trials", bench.DefaultTrials, "timed trials per strategy")
		minRadius   = flag.Int("min-radius", bench.DefaultMinRadius, "minimum sphere radius")
		maxRadius   = flag.Int("max-radius", bench.DefaultMaxRadius, "maximum sphere radius")
		seed        = flag.Int64("seed", 1, "session seed")
		parallelism = flag.Int("parallelism", 1, "independent sessions run concurrently")
		dbPath      = flag.String("db", "", "sqlite database to append the session to")
		htmlPath    = flag.String("html", "", "file to write an HTML chart of the results to")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := carvecache.NewTextLogger(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := bench.Config{
		Cases:       *cases,
		Trials:      *trials,
		MinRadius:   *minRadius,
		MaxRadius:   *maxRadius,
		Seed:        *seed,
		Parallelism: *parallelism,
		Logger:      logger,
	}

	out, err := bench.NewRunner(cfg).Run(ctx)
	if err != nil {
		logger.Error("session failed", "error", err)
		os.Exit(1)
	}

	for _, res := range out.Results {
		fmt.Printf("%-8s %s\n", res.Strategy, res.Summary)
	}

	if *dbPath != "" {
		if err := persist(ctx, *dbPath, cfg, out, logger); err != nil {
			logger.Error("persisting session failed", "error", err)
			os.Exit(1)
		}
	}

	if *htmlPath != "" {
		if err := render(*htmlPath, out, logger); err != nil {
			logger.Error("rendering report failed", "error", err)
			os.Exit(1)
		}
	}
}

func persist(ctx context.Context, path string, cfg bench.Config, out *bench.Outcome, logger *carvecache.Logger) error {
	st, err := report.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.SaveSession(ctx, cfg, out)
	if err != nil {
		return err
	}
	logger.Info("session stored", "db", path, "session", id)
	return nil
}

func render(path string, out *bench.Outcome, logger *carvecache.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := report.RenderHTML(f, out.Results); err != nil {
		return err
	}
	logger.Info("report written", "html", path)
	return nil
}
