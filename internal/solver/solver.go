// Package solver runs the ballistic kernel for the command line tool: it caches
// zero searches, runs independent requests in parallel and reports every run
// through logs, metrics and spans.
package solver

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	ballistics "github.com/gehtsoft-usa/go_ballisticsolver"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
	"github.com/gehtsoft-usa/go_ballisticsolver/internal/logging"
	"github.com/gehtsoft-usa/go_ballisticsolver/internal/observability"
)

// DefaultCacheSize is the number of zero solutions kept when Options.CacheSize is zero.
const DefaultCacheSize = 128

// Options configures a Solver. Zero values are usable.
type Options struct {
	CacheSize   int
	Parallelism int // GOMAXPROCS when zero
	Logger      logging.Logger
	Metrics     *observability.SolverCollector
	Tracer      trace.Tracer
}

// Request asks for the drop table of one calculator zeroed at ZeroDistance.
type Request struct {
	Name         string
	Calculator   ballistics.TrajectoryCalculator
	ZeroDistance unit.Distance
	Step         unit.Distance
	MaximumRange unit.Distance
}

// Result is the answer to one Request.
type Result struct {
	Name  string
	Zero  ballistics.ZeroSolution
	Table *ballistics.DropTable
}

// zeroKey identifies a zero search. All kernel inputs are comparable values,
// drag tables are compared by identity.
type zeroKey struct {
	ammunition ballistics.Ammunition
	scope      ballistics.Scope
	conditions ballistics.Conditions
	distance   float64
	offset     float64
	tolerance  float64
}

// Solver is safe for concurrent use.
type Solver struct {
	cache       *lru.Cache[zeroKey, ballistics.ZeroSolution]
	parallelism int
	log         logging.Logger
	metrics     *observability.SolverCollector
	tracer      trace.Tracer
}

// New creates a Solver.
func New(opts Options) (*Solver, error) {
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[zeroKey, ballistics.ZeroSolution](size)
	if err != nil {
		return nil, fmt.Errorf("create zero cache: %w", err)
	}
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	log := opts.Logger
	if log == nil {
		log = logging.Noop()
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = otel.Tracer(observability.TracerName)
	}
	return &Solver{
		cache:       cache,
		parallelism: parallelism,
		log:         log,
		metrics:     opts.Metrics,
		tracer:      tracer,
	}, nil
}

// Zero finds the muzzle pitch of the calculator under its zero conditions,
// using the zero offset and tolerance configured on the calculator.
func (s *Solver) Zero(ctx context.Context, calc ballistics.TrajectoryCalculator, distance unit.Distance) (ballistics.ZeroSolution, error) {
	ctx, span := s.tracer.Start(ctx, "solver.Zero", trace.WithAttributes(
		attribute.Float64("zero.distance_m", distance.In(unit.DistanceMeter)),
		attribute.Float64("zero.offset_m", calc.ZeroOffset().In(unit.DistanceMeter)),
	))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return ballistics.ZeroSolution{}, err
	}

	key := zeroKey{
		ammunition: calc.Ammunition(),
		scope:      calc.Scope(),
		conditions: calc.ZeroConditions(),
		distance:   distance.In(unit.DistanceMeter),
		offset:     calc.ZeroOffset().In(unit.DistanceMeter),
		tolerance:  calc.ZeroTolerance().In(unit.DistanceMeter),
	}
	if solution, ok := s.cache.Get(key); ok {
		s.metrics.CacheHit()
		span.SetAttributes(attribute.Bool("zero.cached", true))
		s.log.Debug(ctx, "zero cache hit", logging.String("distance", distance.String()))
		return solution, nil
	}

	start := time.Now()
	solution, err := calc.Zero(distance, calc.ZeroOffset(), calc.ZeroTolerance())
	elapsed := time.Since(start)
	if err != nil {
		iterations := 0
		var zeroErr *ballistics.ZeroError
		if errors.As(err, &zeroErr) {
			iterations = zeroErr.Iterations
		}
		s.metrics.ObserveZero(outcome(err), iterations, elapsed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "zero search failed")
		s.log.Warn(ctx, "zero search failed",
			logging.String("distance", distance.String()),
			logging.Int("iterations", iterations),
			logging.Duration("elapsed", elapsed),
			logging.Err(err))
		return ballistics.ZeroSolution{}, err
	}

	s.cache.Add(key, solution)
	s.metrics.ObserveZero(observability.OutcomeConverged, solution.Iterations, elapsed)
	span.SetAttributes(
		attribute.Float64("zero.pitch_rad", solution.Pitch.In(unit.AngularRadian)),
		attribute.Int("zero.iterations", solution.Iterations),
	)
	s.log.Debug(ctx, "zero found",
		logging.String("distance", distance.String()),
		logging.Float("pitch_mrad", solution.Pitch.In(unit.AngularMRad)),
		logging.Int("iterations", solution.Iterations),
		logging.Duration("elapsed", elapsed))
	return solution, nil
}

// DropTable zeroes the calculator and samples the trajectory under its solve conditions.
func (s *Solver) DropTable(ctx context.Context, req Request) (Result, error) {
	ctx, span := s.tracer.Start(ctx, "solver.DropTable", trace.WithAttributes(
		attribute.String("request.name", req.Name),
		attribute.Float64("table.step_m", req.Step.In(unit.DistanceMeter)),
		attribute.Float64("table.range_m", req.MaximumRange.In(unit.DistanceMeter)),
	))
	defer span.End()

	zero, err := s.Zero(ctx, req.Calculator, req.ZeroDistance)
	if err != nil {
		span.SetStatus(codes.Error, "zero search failed")
		return Result{}, fmt.Errorf("%s: %w", req.Name, err)
	}

	start := time.Now()
	simulation, err := req.Calculator.SolveSimulation(zero.Pitch)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid solve conditions")
		return Result{}, fmt.Errorf("%s: %w", req.Name, err)
	}
	table, err := ballistics.BuildDropTable(simulation, ballistics.DropTableRequest{
		Step:          req.Step,
		MaximumRange:  req.MaximumRange,
		DropOffset:    unit.MustCreateDistance(0, unit.DistanceMeter),
		WindageOffset: unit.MustCreateDistance(0, unit.DistanceMeter),
		Tolerance:     req.Calculator.ZeroTolerance(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid drop table request")
		return Result{}, fmt.Errorf("%s: %w", req.Name, err)
	}
	elapsed := time.Since(start)

	s.metrics.ObserveDropTable(table.Len(), elapsed)
	span.SetAttributes(attribute.Int("table.rows", table.Len()))
	s.log.Info(ctx, "drop table ready",
		logging.String("name", req.Name),
		logging.Int("rows", table.Len()),
		logging.Float("pitch_mrad", zero.Pitch.In(unit.AngularMRad)),
		logging.Duration("elapsed", elapsed))
	return Result{Name: req.Name, Zero: zero, Table: table}, nil
}

// SolveBatch solves the requests in parallel. The results keep the order of
// the requests; the first failure cancels the requests not started yet.
func (s *Solver) SolveBatch(ctx context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.parallelism)
	for i, req := range reqs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := s.DropTable(ctx, req)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ballistics.ErrUnreachableZero):
		return observability.OutcomeUnreachable
	case errors.Is(err, ballistics.ErrConvergenceStalled):
		return observability.OutcomeStalled
	case errors.Is(err, ballistics.ErrRangeExceedsTrajectory):
		return observability.OutcomeTooFar
	default:
		return observability.OutcomeInvalid
	}
}
