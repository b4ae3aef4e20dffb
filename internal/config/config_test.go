package config_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ballistics "github.com/gehtsoft-usa/go_ballisticsolver"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
	"github.com/gehtsoft-usa/go_ballisticsolver/internal/config"
)

func assertEqual(t *testing.T, a, b, accuracy float64, name string) {
	t.Helper()
	if math.Abs(a-b) > accuracy {
		t.Errorf("Assertion %s failed (%f/%f)", name, a, b)
	}
}

func TestDefaultScenario(t *testing.T) {
	req, err := config.Default().Request()
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, req.ZeroDistance.In(unit.DistanceMeter), 100, 1e-9, "Zero distance")
	assertEqual(t, req.Step.In(unit.DistanceMeter), 100, 1e-9, "Step")
	assertEqual(t, req.MaximumRange.In(unit.DistanceMeter), 1000, 1e-9, "Range")

	calc := req.Calculator
	assertEqual(t, calc.ZeroTolerance().In(unit.DistanceMillimeter), 5, 1e-9, "Tolerance")
	assertEqual(t, calc.Scope().Height().In(unit.DistanceInch), 1.5, 1e-9, "Scope height")
	assertEqual(t, calc.Ammunition().MuzzleVelocity().In(unit.VelocityMPS), 800, 1e-9, "Muzzle velocity")
	if calc.ZeroConditions() != calc.SolveConditions() {
		t.Errorf("solve conditions must default to the zero conditions")
	}
	assertEqual(t, calc.ZeroConditions().Atmosphere().Density(), 1.225, 1e-3, "Density")
}

func TestDecodeOverridesDefaults(t *testing.T) {
	s, err := config.Decode(strings.NewReader(`{
		"name": "6.5",
		"projectile": {"bc": 0.3, "drag_function": "G7"},
		"muzzle_velocity_mps": 830,
		"zero": {"distance_m": 200},
		"solve_conditions": {
			"wind": {"speed_mps": 4, "direction_deg": 90},
			"shooter": {"latitude_deg": 45, "gravity_mps2": 9.81}
		}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "6.5" || s.Projectile.DragFunction != "G7" {
		t.Errorf("unexpected scenario %+v", s)
	}
	assertEqual(t, s.Projectile.WeightGr, 168, 1e-9, "Default weight")
	assertEqual(t, s.Zero.ToleranceMm, 5, 1e-9, "Default tolerance")
	if s.SolveConditions == nil {
		t.Fatal("solve conditions expected")
	}
	assertEqual(t, s.SolveConditions.Atmosphere.PressureHPa, 1013.25, 1e-9, "Default solve pressure")
	assertEqual(t, s.SolveConditions.TimeStepMs, 1, 1e-9, "Default solve time step")

	calc, err := s.Calculator()
	if err != nil {
		t.Fatal(err)
	}
	if calc.Ammunition().Bullet().BallisticCoefficient().Function() != ballistics.DragFunctionG7 {
		t.Errorf("expected G7")
	}
	solve := calc.SolveConditions()
	assertEqual(t, solve.Wind().Velocity().In(unit.VelocityMPS), 4, 1e-9, "Wind speed")
	assertEqual(t, solve.Shooter().Latitude().In(unit.AngularDegree), 45, 1e-9, "Latitude")
	assertEqual(t, solve.Shooter().Gravity().In(unit.AccelerationMPS2), 9.81, 1e-9, "Gravity")
	if calc.ZeroConditions().Wind().Velocity().In(unit.VelocityMPS) != 0 {
		t.Errorf("zero conditions must stay calm")
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := config.Decode(strings.NewReader("{\n  \"name\": \"x\",\n  \"zero\": {\"distance_m\": }\n}"))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("expected a syntax error on line 3, got %v", err)
	}

	_, err = config.Decode(strings.NewReader("{\n\"zero\": {\"distance_m\": \"far\"}}"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected a type error on line 2, got %v", err)
	}

	_, err = config.Decode(strings.NewReader(`{"zero": {"distanse_m": 100}}`))
	if err == nil || !strings.Contains(err.Error(), "distanse_m") {
		t.Errorf("expected an unknown field error, got %v", err)
	}
}

func TestInvalidScenario(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*config.Scenario)
		want   error
	}{
		{"latitude", func(s *config.Scenario) { s.ZeroConditions.Shooter.LatitudeDeg = 91 }, ballistics.ErrOutOfRange},
		{"drag function", func(s *config.Scenario) { s.Projectile.DragFunction = "G2" }, ballistics.ErrOutOfRange},
		{"bc", func(s *config.Scenario) { s.Projectile.BC = 0 }, ballistics.ErrOutOfRange},
		{"time step", func(s *config.Scenario) { s.ZeroConditions.TimeStepMs = 0 }, ballistics.ErrOutOfRange},
		{"drag curve", func(s *config.Scenario) { s.Projectile.DragCurve = [][2]float64{{1, 0.3}} }, ballistics.ErrInvalidTable},
		{"cant", func(s *config.Scenario) { s.Scope.CantDeg = 100 }, ballistics.ErrOutOfRange},
		{"solve wind", func(s *config.Scenario) {
			c := config.DefaultConditions()
			c.Wind.DirectionDeg = 400
			s.SolveConditions = &c
		}, ballistics.ErrOutOfRange},
	}
	for _, c := range cases {
		s := config.Default()
		c.modify(&s)
		if _, err := s.Request(); !errors.Is(err, c.want) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}
}

func TestCustomDragCurveAndAltitude(t *testing.T) {
	altitude := 1000.0
	s := config.Default()
	s.Projectile.DragCurve = [][2]float64{{0, 0.2}, {1, 0.4}, {3, 0.3}}
	s.ZeroConditions.Atmosphere.AltitudeM = &altitude

	calc, err := s.Calculator()
	if err != nil {
		t.Fatal(err)
	}
	table := calc.Ammunition().Bullet().BallisticCoefficient().Table()
	assertEqual(t, table.Lookup(2), 0.35, 1e-9, "Custom curve")
	assertEqual(t, calc.ZeroConditions().Atmosphere().Density(), 1.1117, 1e-3, "Density at 1000m")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.json")
	if err := os.WriteFile(path, []byte(`{"name": "file", "table": {"step_m": 50, "range_m": 300}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "file" {
		t.Errorf("unexpected name %q", s.Name)
	}
	assertEqual(t, s.Table.StepM, 50, 1e-9, "Step")
	assertEqual(t, s.MuzzleVelocityMS, 800, 1e-9, "Default velocity")

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func timeTo(t *testing.T, s config.Scenario, distance float64) float64 {
	t.Helper()
	calc, err := s.Calculator()
	if err != nil {
		t.Fatal(err)
	}
	sim, err := calc.SolveSimulation(unit.MustCreateAngular(0, unit.AngularRadian))
	if err != nil {
		t.Fatal(err)
	}
	for p := range sim.Packets() {
		if p.Distance().In(unit.DistanceMeter) >= distance {
			return p.Time().TotalSeconds()
		}
	}
	t.Fatalf("the trajectory ends before %.0fm", distance)
	return 0
}

func TestWindDirectionZeroIsHeadwind(t *testing.T) {
	head, err := config.Decode(strings.NewReader(`{"zero_conditions": {"wind": {"speed_mps": 10, "direction_deg": 0}}}`))
	if err != nil {
		t.Fatal(err)
	}
	tail, err := config.Decode(strings.NewReader(`{"zero_conditions": {"wind": {"speed_mps": 10, "direction_deg": 180}}}`))
	if err != nil {
		t.Fatal(err)
	}
	calm := timeTo(t, config.Default(), 500)
	if headTime := timeTo(t, head, 500); headTime <= calm {
		t.Errorf("direction 0 must slow the projectile down: %fs vs %fs in calm air", headTime, calm)
	}
	if tailTime := timeTo(t, tail, 500); tailTime >= calm {
		t.Errorf("direction 180 must speed the projectile up: %fs vs %fs in calm air", tailTime, calm)
	}
}
