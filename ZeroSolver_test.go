package go_ballisticsolver_test

import (
	"errors"
	"testing"

	"github.com/gehtsoft-usa/go_ballisticsolver"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

func TestZero100m(t *testing.T) {
	sim := createDefaultSimulation(t)
	solution, err := sim.FindZero(meters(100), meters(0), meters(0.005))
	if err != nil {
		t.Fatal(err)
	}
	if solution.Iterations > 30 {
		t.Errorf("too many iterations: %d", solution.Iterations)
	}
	pitch := solution.Pitch.In(unit.AngularDegree)
	if pitch <= 0 || pitch >= 45 {
		t.Errorf("pitch %f is out of (0, 45)", pitch)
	}
	assertEqual(t, solution.Pitch.In(unit.AngularMRad), 1.2, 0.4, "Pitch")
	assertEqual(t, solution.Elevation.In(unit.DistanceMeter), 0, 0.005, "Elevation")

	//the solve run at the pitch found crosses the line of sight at the zero distance
	p := packetAt(t, sim.WithMuzzlePitch(solution.Pitch), 100)
	assertEqual(t, p.Distance().In(unit.DistanceMeter), 100, 1, "Distance")
	assertEqual(t, p.Elevation().In(unit.DistanceMeter), 0, 0.005, "Round trip elevation")

	angle, err := sim.Zero(meters(100), meters(0), meters(0.005))
	if err != nil {
		t.Fatal(err)
	}
	if angle != solution.Pitch {
		t.Errorf("Zero and FindZero disagree: %s vs %s", angle, solution.Pitch)
	}
}

func TestZeroWithOffset(t *testing.T) {
	sim := createDefaultSimulation(t)
	low, err := sim.FindZero(meters(200), meters(0), meters(0.005))
	if err != nil {
		t.Fatal(err)
	}
	high, err := sim.FindZero(meters(200), meters(0.1), meters(0.005))
	if err != nil {
		t.Fatal(err)
	}
	if high.Pitch.In(unit.AngularRadian) <= low.Pitch.In(unit.AngularRadian) {
		t.Errorf("higher offset needs a higher pitch: %s vs %s", high.Pitch, low.Pitch)
	}
	assertEqual(t, high.Elevation.In(unit.DistanceMeter), 0.1, 0.005, "Offset elevation")
}

func TestZeroIgnoresSimulationPitch(t *testing.T) {
	sim := createDefaultSimulation(t)
	a, err := sim.FindZero(meters(100), meters(0), meters(0.005))
	if err != nil {
		t.Fatal(err)
	}
	b, err := sim.WithMuzzlePitch(unit.MustCreateAngular(10, unit.AngularDegree)).FindZero(meters(100), meters(0), meters(0.005))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("zero depends on the pitch of the simulation: %v vs %v", a, b)
	}
}

func TestZeroBeyondTrajectory(t *testing.T) {
	sim := createDefaultSimulation(t)
	_, err := sim.FindZero(meters(1000000), meters(0), meters(0.005))
	if !errors.Is(err, go_ballisticsolver.ErrRangeExceedsTrajectory) {
		t.Fatalf("expected ErrRangeExceedsTrajectory, got %v", err)
	}
	var zeroErr *go_ballisticsolver.ZeroError
	if !errors.As(err, &zeroErr) {
		t.Fatalf("expected *ZeroError, got %T", err)
	}
	if zeroErr.Iterations != 1 {
		t.Errorf("the first trial at 45° must fail, got %d iterations", zeroErr.Iterations)
	}
	assertEqual(t, zeroErr.Pitch.In(unit.AngularDegree), 45, 1e-9, "Pitch")
}

func TestUnreachableZero(t *testing.T) {
	sim := createSimulation(t, createAmmunition(t, 50), createBoreScope(t), go_ballisticsolver.CreateDefaultConditions())
	_, err := sim.FindZero(meters(100), meters(100), meters(0.005))
	if !errors.Is(err, go_ballisticsolver.ErrUnreachableZero) {
		t.Fatalf("expected ErrUnreachableZero, got %v", err)
	}
	var zeroErr *go_ballisticsolver.ZeroError
	if !errors.As(err, &zeroErr) || zeroErr.Iterations != 2 {
		t.Fatalf("expected to fail on the second iteration, got %v", err)
	}
	assertEqual(t, zeroErr.Pitch.In(unit.AngularDegree), 45, 1e-9, "Last pitch tried")
}

func TestUnreachableZeroAtMuzzle(t *testing.T) {
	//the bore is under the scope, so no pitch lifts the muzzle onto the line of sight
	_, err := createDefaultSimulation(t).FindZero(meters(0), meters(0), meters(0.005))
	var zeroErr *go_ballisticsolver.ZeroError
	if !errors.As(err, &zeroErr) || !errors.Is(err, go_ballisticsolver.ErrUnreachableZero) {
		t.Fatalf("expected ErrUnreachableZero, got %v", err)
	}
	if pitch := zeroErr.Pitch.In(unit.AngularDegree); pitch > 45+1e-9 {
		t.Errorf("reported pitch %f was never tried", pitch)
	}
	assertEqual(t, zeroErr.Pitch.In(unit.AngularDegree), 45, 1e-9, "Last pitch tried")
}

func TestZeroStallsWithoutTolerance(t *testing.T) {
	sim := createDefaultSimulation(t)
	_, err := sim.FindZero(meters(100), meters(0), meters(0))
	if !errors.Is(err, go_ballisticsolver.ErrConvergenceStalled) {
		t.Fatalf("expected ErrConvergenceStalled, got %v", err)
	}
}

func TestZeroInvalidInput(t *testing.T) {
	sim := createDefaultSimulation(t)
	if _, err := sim.FindZero(meters(-1), meters(0), meters(0.005)); !errors.Is(err, go_ballisticsolver.ErrOutOfRange) {
		t.Errorf("negative distance: expected ErrOutOfRange, got %v", err)
	}
	if _, err := sim.FindZero(meters(100), meters(0), meters(-0.005)); !errors.Is(err, go_ballisticsolver.ErrOutOfRange) {
		t.Errorf("negative tolerance: expected ErrOutOfRange, got %v", err)
	}
}
