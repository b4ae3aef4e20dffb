// Package observability wires Prometheus metrics and OpenTelemetry tracing
// into the solver service.
package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels of ballistics_zero_searches_total.
const (
	OutcomeConverged   = "converged"
	OutcomeUnreachable = "unreachable"
	OutcomeStalled     = "stalled"
	OutcomeTooFar      = "range_exceeds_trajectory"
	OutcomeInvalid     = "invalid"
)

// SolverCollector bundles the Prometheus metrics of the zero searches and
// drop table runs.
type SolverCollector struct {
	gatherer prometheus.Gatherer

	ZeroSearches   *prometheus.CounterVec
	ZeroIterations prometheus.Histogram
	DropTableRows  prometheus.Histogram
	Durations      *prometheus.HistogramVec
	ZeroCacheHits  prometheus.Counter
}

// NewSolverCollector registers the solver metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil. Metrics
// already registered by an earlier collector are reused.
func NewSolverCollector(reg prometheus.Registerer) (*SolverCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	searches, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ballistics_zero_searches_total",
		Help: "Zero searches labeled by outcome.",
	}, []string{"outcome"}), "ballistics_zero_searches_total")
	if err != nil {
		return nil, err
	}
	iterations, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ballistics_zero_iterations",
		Help:    "Trial runs made by one zero search.",
		Buckets: []float64{1, 2, 5, 10, 15, 20, 30, 50, 80},
	}), "ballistics_zero_iterations")
	if err != nil {
		return nil, err
	}
	rows, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ballistics_drop_table_rows",
		Help:    "Rows in the produced drop tables.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}), "ballistics_drop_table_rows")
	if err != nil {
		return nil, err
	}
	durations, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ballistics_solve_duration_seconds",
		Help:    "Solver latency in seconds, labeled by operation.",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"operation"}), "ballistics_solve_duration_seconds")
	if err != nil {
		return nil, err
	}
	hits, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ballistics_zero_cache_hits_total",
		Help: "Zero searches answered from the cache.",
	}), "ballistics_zero_cache_hits_total")
	if err != nil {
		return nil, err
	}

	return &SolverCollector{
		gatherer:       gatherer,
		ZeroSearches:   searches,
		ZeroIterations: iterations,
		DropTableRows:  rows,
		Durations:      durations,
		ZeroCacheHits:  hits,
	}, nil
}

// ObserveZero records one finished zero search. Iterations are only observed
// when the search ran at least one trial.
func (c *SolverCollector) ObserveZero(outcome string, iterations int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.ZeroSearches.WithLabelValues(outcome).Inc()
	if iterations > 0 {
		c.ZeroIterations.Observe(float64(iterations))
	}
	c.Durations.WithLabelValues("zero").Observe(elapsed.Seconds())
}

// ObserveDropTable records one produced drop table.
func (c *SolverCollector) ObserveDropTable(rows int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.DropTableRows.Observe(float64(rows))
	c.Durations.WithLabelValues("drop_table").Observe(elapsed.Seconds())
}

// CacheHit counts a zero answered from the cache.
func (c *SolverCollector) CacheHit() {
	if c == nil {
		return
	}
	c.ZeroCacheHits.Inc()
}

// WriteTextfile dumps every metric of the registry in the text exposition
// format, e.g. for the node exporter textfile collector.
func (c *SolverCollector) WriteTextfile(path string) error {
	if c == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.gatherer); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, collector C, name string) (C, error) {
	if err := reg.Register(collector); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return collector, err
		}
		existing, ok := are.ExistingCollector.(C)
		if !ok {
			return collector, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return existing, nil
	}
	return collector, nil
}
