// Command ballistics zeroes one or more loads and prints their drop tables.
//
//	ballistics [flags] [scenario.json ...]
//
// Without scenario files the built-in .308 scenario is solved. Logging is
// configured with LOG_LEVEL, LOG_FORMAT and LOG_FILE, tracing with the
// BALLISTICS_TRACING_* variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gehtsoft-usa/go_ballisticsolver/internal/config"
	"github.com/gehtsoft-usa/go_ballisticsolver/internal/logging"
	"github.com/gehtsoft-usa/go_ballisticsolver/internal/observability"
	"github.com/gehtsoft-usa/go_ballisticsolver/internal/report"
	"github.com/gehtsoft-usa/go_ballisticsolver/internal/solver"
)

// Config holds the command line options.
type Config struct {
	Scenarios    []string
	ZeroDistance float64 // metres, scenario value when zero
	Step         float64 // metres, scenario value when zero
	Range        float64 // metres, scenario value when zero
	Format       report.Format
	Compress     bool
	Output       string // stdout when empty
	MetricsFile  string
	CacheSize    int
	Parallelism  int
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout))
}

// execute runs the command and returns the process exit code: 0 on success,
// 2 on invalid flags, 1 on any other failure.
func execute(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("ballistics", flag.ContinueOnError)
	zero := flags.Float64("zero", 0, "zero distance in metres (overrides the scenarios)")
	step := flags.Float64("step", 0, "drop table step in metres (overrides the scenarios)")
	maxRange := flags.Float64("range", 0, "drop table range in metres (overrides the scenarios)")
	format := flags.String("format", string(report.FormatText), "output format: text, csv, json or msgpack")
	compress := flags.Bool("compress", false, "compress json and msgpack output with zstd")
	output := flags.String("o", "", "write the report to this file instead of stdout")
	metricsFile := flags.String("metrics-file", "", "write Prometheus metrics to this textfile after solving")
	cacheSize := flags.Int("cache", solver.DefaultCacheSize, "number of zero solutions to cache")
	parallel := flags.Int("parallel", 0, "scenarios solved in parallel, GOMAXPROCS when 0")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	log, closer := logging.NewFromEnv()
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	f, err := report.ParseFormat(*format)
	if err != nil {
		log.Error(ctx, "invalid flags", logging.Err(err))
		return 2
	}

	shutdown, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.Err(err))
		return 1
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdown, log)

	cfg := Config{
		Scenarios:    flags.Args(),
		ZeroDistance: *zero,
		Step:         *step,
		Range:        *maxRange,
		Format:       f,
		Compress:     *compress,
		Output:       *output,
		MetricsFile:  *metricsFile,
		CacheSize:    *cacheSize,
		Parallelism:  *parallel,
	}
	if err := run(ctx, cfg, log, stdout); err != nil {
		log.Error(ctx, "solve failed", logging.Err(err))
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg Config, log logging.Logger, stdout io.Writer) error {
	requests, err := loadRequests(cfg)
	if err != nil {
		return err
	}

	collector, err := observability.NewSolverCollector(prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("initialise metrics: %w", err)
	}
	s, err := solver.New(solver.Options{
		CacheSize:   cfg.CacheSize,
		Parallelism: cfg.Parallelism,
		Logger:      log,
		Metrics:     collector,
	})
	if err != nil {
		return err
	}

	log.Info(ctx, "solving",
		logging.Int("scenarios", len(requests)),
		logging.Any("format", cfg.Format),
		logging.Bool("compress", cfg.Compress))
	results, err := s.SolveBatch(ctx, requests)
	if err != nil {
		return err
	}

	opts := report.Options{Format: cfg.Format, Compress: cfg.Compress}
	if cfg.Output == "" {
		if err := report.Write(stdout, results, opts); err != nil {
			return err
		}
	} else {
		if err := writeReport(cfg.Output, results, opts); err != nil {
			return err
		}
		log.Info(ctx, "report written", logging.String("path", cfg.Output))
	}

	if cfg.MetricsFile != "" {
		if err := collector.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
	}
	return nil
}

func writeReport(path string, results []solver.Result, opts report.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.Write(f, results, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func loadRequests(cfg Config) ([]solver.Request, error) {
	scenarios := []config.Scenario{config.Default()}
	if len(cfg.Scenarios) > 0 {
		scenarios = scenarios[:0]
		for _, path := range cfg.Scenarios {
			s, err := config.Load(path)
			if err != nil {
				return nil, err
			}
			scenarios = append(scenarios, s)
		}
	}

	requests := make([]solver.Request, len(scenarios))
	for i, s := range scenarios {
		if cfg.ZeroDistance > 0 {
			s.Zero.DistanceM = cfg.ZeroDistance
		}
		if cfg.Step > 0 {
			s.Table.StepM = cfg.Step
		}
		if cfg.Range > 0 {
			s.Table.RangeM = cfg.Range
		}
		req, err := s.Request()
		if err != nil {
			return nil, err
		}
		requests[i] = req
	}
	return requests, nil
}
