package go_ballisticsolver_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gehtsoft-usa/go_ballisticsolver"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

func deg(v float64) unit.Angular {
	return unit.MustCreateAngular(v, unit.AngularDegree)
}

func TestShooterRanges(t *testing.T) {
	cases := []struct {
		name                           string
		lineOfSight, bearing, latitude float64
		ok                             bool
	}{
		{"level", 0, 0, 0, true},
		{"limits", 90, 360, -90, true},
		{"negative limits", -90, -360, 90, true},
		{"line of sight", 90.5, 0, 0, false},
		{"bearing", 0, 361, 0, false},
		{"latitude", 0, 0, -91, false},
	}
	for _, c := range cases {
		_, err := go_ballisticsolver.CreateShooter(deg(c.lineOfSight), deg(c.bearing), deg(c.latitude))
		if c.ok && err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
		}
		if !c.ok && !errors.Is(err, go_ballisticsolver.ErrOutOfRange) {
			t.Errorf("%s: expected ErrOutOfRange, got %v", c.name, err)
		}
	}
}

func TestOutOfRangeErrorDetails(t *testing.T) {
	_, err := go_ballisticsolver.CreateShooter(deg(0), deg(0), deg(100))
	var rangeErr *go_ballisticsolver.OutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected *OutOfRangeError, got %T", err)
	}
	assertEqual(t, rangeErr.Min, -90, 0, "Min")
	assertEqual(t, rangeErr.Max, 90, 0, "Max")
	assertEqual(t, rangeErr.Value, 100, 1e-9, "Value")
}

func TestWindRanges(t *testing.T) {
	speed := unit.MustCreateVelocity(5, unit.VelocityMPS)
	if _, err := go_ballisticsolver.CreateWind(speed, deg(-360)); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := go_ballisticsolver.CreateWind(speed, deg(360.1)); !errors.Is(err, go_ballisticsolver.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := go_ballisticsolver.CreateWind(unit.MustCreateVelocity(-1, unit.VelocityMPS), deg(0)); !errors.Is(err, go_ballisticsolver.ErrOutOfRange) {
		t.Errorf("negative speed: expected ErrOutOfRange, got %v", err)
	}
}

func TestScopeRanges(t *testing.T) {
	height := unit.MustCreateDistance(2, unit.DistanceInch)
	offset := unit.MustCreateDistance(0, unit.DistanceInch)
	if _, err := go_ballisticsolver.CreateScope(height, offset, deg(-90)); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := go_ballisticsolver.CreateScope(height, offset, deg(91)); !errors.Is(err, go_ballisticsolver.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	assertEqual(t, go_ballisticsolver.CreateDefaultScope().Height().In(unit.DistanceInch), 1.5, 1e-12, "Default height")
}

func TestConditionsTimeStep(t *testing.T) {
	for _, step := range []time.Duration{0, -time.Millisecond, 2 * time.Second} {
		_, err := go_ballisticsolver.CreateConditions(go_ballisticsolver.CreateDefaultAtmosphere(),
			go_ballisticsolver.CreateNoWind(), go_ballisticsolver.CreateLevelShooter(), step)
		if !errors.Is(err, go_ballisticsolver.ErrOutOfRange) {
			t.Errorf("step %s: expected ErrOutOfRange, got %v", step, err)
		}
	}
	assertEqual(t, go_ballisticsolver.CreateDefaultConditions().TimeStep().Seconds(), 0.001, 0, "Default step")
}

func TestProjectileRanges(t *testing.T) {
	bc, err := go_ballisticsolver.CreateBallisticCoefficient(0.5, go_ballisticsolver.DragFunctionG7)
	if err != nil {
		t.Fatal(err)
	}
	caliber := unit.MustCreateDistance(0.308, unit.DistanceInch)
	weight := unit.MustCreateWeight(175, unit.WeightGrain)
	if _, err := go_ballisticsolver.CreateProjectile(bc, unit.MustCreateDistance(0, unit.DistanceInch), weight); !errors.Is(err, go_ballisticsolver.ErrOutOfRange) {
		t.Errorf("zero caliber: expected ErrOutOfRange, got %v", err)
	}
	if _, err := go_ballisticsolver.CreateProjectile(bc, caliber, unit.MustCreateWeight(0, unit.WeightGrain)); !errors.Is(err, go_ballisticsolver.ErrOutOfRange) {
		t.Errorf("zero weight: expected ErrOutOfRange, got %v", err)
	}
	if _, err := go_ballisticsolver.CreateProjectile(go_ballisticsolver.BallisticCoefficient{}, caliber, weight); !errors.Is(err, go_ballisticsolver.ErrOutOfRange) {
		t.Errorf("no BC: expected ErrOutOfRange, got %v", err)
	}

	projectile, err := go_ballisticsolver.CreateProjectile(bc, caliber, weight)
	if err != nil {
		t.Fatal(err)
	}
	//175gr .308: sectional density 0.2635 lb/in²
	assertEqual(t, projectile.FormFactor(), 0.2635/0.5, 1e-3, "Form factor")
	if _, err := go_ballisticsolver.CreateAmmunition(projectile, unit.MustCreateVelocity(0, unit.VelocityMPS)); !errors.Is(err, go_ballisticsolver.ErrOutOfRange) {
		t.Errorf("zero velocity: expected ErrOutOfRange, got %v", err)
	}
}

func TestNaNIsRejected(t *testing.T) {
	if _, err := unit.CreateAngular(math.NaN(), unit.AngularDegree); err == nil {
		t.Errorf("NaN angle accepted")
	}
	if _, err := go_ballisticsolver.CreateAtmosphere(unit.MustCreatePressure(1000, unit.PressureHP),
		unit.MustCreateTemperature(15, unit.TemperatureCelsius), math.NaN()); !errors.Is(err, go_ballisticsolver.ErrOutOfRange) {
		t.Errorf("NaN humidity: expected ErrOutOfRange, got %v", err)
	}
	if _, err := go_ballisticsolver.CreateBallisticCoefficient(math.NaN(), go_ballisticsolver.DragFunctionG1); !errors.Is(err, go_ballisticsolver.ErrOutOfRange) {
		t.Errorf("NaN BC: expected ErrOutOfRange, got %v", err)
	}
}

func TestCustomDragTable(t *testing.T) {
	table := go_ballisticsolver.MustCreateDragTable([]go_ballisticsolver.DragPoint{{Mach: 0, Cd: 0.3}, {Mach: 5, Cd: 0.3}})
	bc, err := go_ballisticsolver.CreateCustomBallisticCoefficient(0.5, go_ballisticsolver.DragFunctionG1, table)
	if err != nil {
		t.Fatal(err)
	}
	if bc.Table() != table {
		t.Errorf("the custom table isn't used")
	}
	if _, err := go_ballisticsolver.CreateCustomBallisticCoefficient(0.5, go_ballisticsolver.DragFunctionG1, nil); !errors.Is(err, go_ballisticsolver.ErrInvalidTable) {
		t.Errorf("expected ErrInvalidTable, got %v", err)
	}
}
