// Package config loads ballistic scenarios from JSON files and turns them
// into validated kernel inputs.
//
// Every quantity carries its unit in the key name so that a scenario reads
// the way a shooter writes down a load: grains, inches, metres per second.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ballistics "github.com/gehtsoft-usa/go_ballisticsolver"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
	"github.com/gehtsoft-usa/go_ballisticsolver/internal/solver"
)

// Projectile describes the bullet.
type Projectile struct {
	BC           float64      `json:"bc"`
	DragFunction string       `json:"drag_function"`
	DiameterIn   float64      `json:"diameter_in"`
	WeightGr     float64      `json:"weight_gr"`
	DragCurve    [][2]float64 `json:"drag_curve,omitempty"` // optional [mach, cd] pairs replacing the standard table
}

// Scope describes the sight mounted over the bore.
type Scope struct {
	HeightIn float64 `json:"height_in"`
	OffsetIn float64 `json:"offset_in"`
	CantDeg  float64 `json:"cant_deg"`
}

// Atmosphere is either an ICAO standard atmosphere at AltitudeM or the
// measured temperature, pressure and humidity.
type Atmosphere struct {
	AltitudeM    *float64 `json:"altitude_m,omitempty"`
	TemperatureC float64  `json:"temperature_c"`
	PressureHPa  float64  `json:"pressure_hpa"`
	Humidity     float64  `json:"humidity"`
}

// Wind is a constant wind relative to the line of fire: direction 0 is a
// headwind, 90 blows from the right, 180 is a tailwind.
type Wind struct {
	SpeedMPS     float64 `json:"speed_mps"`
	DirectionDeg float64 `json:"direction_deg"`
}

// Shooter is the orientation of the shooter on the earth.
type Shooter struct {
	LineOfSightDeg float64  `json:"line_of_sight_deg"`
	BearingDeg     float64  `json:"bearing_deg"`
	LatitudeDeg    float64  `json:"latitude_deg"`
	GravityMPS2    *float64 `json:"gravity_mps2,omitempty"`
}

// Conditions are the shot conditions.
type Conditions struct {
	Atmosphere Atmosphere `json:"atmosphere"`
	Wind       Wind       `json:"wind"`
	Shooter    Shooter    `json:"shooter"`
	TimeStepMs float64    `json:"time_step_ms"`
}

// Zero is the zeroing request.
type Zero struct {
	DistanceM   float64 `json:"distance_m"`
	OffsetM     float64 `json:"offset_m"`
	ToleranceMm float64 `json:"tolerance_mm"`
}

// Table is the drop table request.
type Table struct {
	StepM  float64 `json:"step_m"`
	RangeM float64 `json:"range_m"`
}

// Scenario is one complete ballistic problem. SolveConditions default to
// ZeroConditions when omitted.
type Scenario struct {
	Name             string      `json:"name"`
	Projectile       Projectile  `json:"projectile"`
	MuzzleVelocityMS float64     `json:"muzzle_velocity_mps"`
	Scope            Scope       `json:"scope"`
	ZeroConditions   Conditions  `json:"zero_conditions"`
	SolveConditions  *Conditions `json:"solve_conditions,omitempty"`
	Zero             Zero        `json:"zero"`
	Table            Table       `json:"table"`
}

// DefaultConditions are the standard conditions: 15°C, 1013.25 hPa, dry
// air, no wind, level shot along the equator with a 1 ms time step.
func DefaultConditions() Conditions {
	return Conditions{
		Atmosphere: Atmosphere{TemperatureC: 15, PressureHPa: 1013.25},
		TimeStepMs: 1,
	}
}

// Default returns a .308 168gr match load zeroed at 100 m.
func Default() Scenario {
	return Scenario{
		Name: "default",
		Projectile: Projectile{
			BC:           0.462,
			DragFunction: "G1",
			DiameterIn:   0.308,
			WeightGr:     168,
		},
		MuzzleVelocityMS: 800,
		Scope:            Scope{HeightIn: 1.5},
		ZeroConditions:   DefaultConditions(),
		Zero:             Zero{DistanceM: 100, ToleranceMm: 5},
		Table:            Table{StepM: 100, RangeM: 1000},
	}
}

// Load reads the scenario file at path on top of Default.
func Load(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, err
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads a scenario on top of Default. Unknown keys are rejected.
func Decode(r io.Reader) (Scenario, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Scenario{}, err
	}
	s := Default()
	var shape struct {
		SolveConditions json.RawMessage `json:"solve_conditions"`
	}
	if err := json.Unmarshal(b, &shape); err != nil {
		return Scenario{}, describe(b, err)
	}
	if len(shape.SolveConditions) > 0 && string(shape.SolveConditions) != "null" {
		solve := DefaultConditions()
		s.SolveConditions = &solve
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Scenario{}, describe(b, err)
	}
	return s, nil
}

// describe adds the line and character of a decoding error.
func describe(b []byte, err error) error {
	position := func(offset int64) (line, char int) {
		line, char = 1, 1
		for i := 0; i < int(offset) && i < len(b); i++ {
			if b[i] == '\n' {
				line++
				char = 1
			} else {
				char++
			}
		}
		return
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		line, char := position(syntaxErr.Offset)
		return fmt.Errorf("line %d, character %d: %w", line, char, err)
	case errors.As(err, &typeErr):
		line, char := position(typeErr.Offset)
		return fmt.Errorf("line %d, character %d: %s value for %s invalid for type %s",
			line, char, typeErr.Value, typeErr.Field, typeErr.Type)
	default:
		return err
	}
}

// Calculator validates the scenario and creates the trajectory calculator
// with the zero offset and tolerance applied.
func (s Scenario) Calculator() (ballistics.TrajectoryCalculator, error) {
	ammunition, err := s.ammunition()
	if err != nil {
		return ballistics.TrajectoryCalculator{}, err
	}
	scope, err := ballistics.CreateScope(
		unit.MustCreateDistance(s.Scope.HeightIn, unit.DistanceInch),
		unit.MustCreateDistance(s.Scope.OffsetIn, unit.DistanceInch),
		unit.MustCreateAngular(s.Scope.CantDeg, unit.AngularDegree))
	if err != nil {
		return ballistics.TrajectoryCalculator{}, fmt.Errorf("scope: %w", err)
	}
	zeroConditions, err := s.ZeroConditions.build()
	if err != nil {
		return ballistics.TrajectoryCalculator{}, fmt.Errorf("zero conditions: %w", err)
	}
	solveConditions := zeroConditions
	if s.SolveConditions != nil {
		if solveConditions, err = s.SolveConditions.build(); err != nil {
			return ballistics.TrajectoryCalculator{}, fmt.Errorf("solve conditions: %w", err)
		}
	}

	calc := ballistics.CreateTrajectoryCalculator(ammunition, scope, zeroConditions, solveConditions)
	calc.SetZeroOffset(unit.MustCreateDistance(s.Zero.OffsetM, unit.DistanceMeter))
	calc.SetZeroTolerance(unit.MustCreateDistance(s.Zero.ToleranceMm, unit.DistanceMillimeter))
	return calc, nil
}

// Request validates the scenario and builds the solver request.
func (s Scenario) Request() (solver.Request, error) {
	calc, err := s.Calculator()
	if err != nil {
		return solver.Request{}, fmt.Errorf("%s: %w", s.Name, err)
	}
	return solver.Request{
		Name:         s.Name,
		Calculator:   calc,
		ZeroDistance: unit.MustCreateDistance(s.Zero.DistanceM, unit.DistanceMeter),
		Step:         unit.MustCreateDistance(s.Table.StepM, unit.DistanceMeter),
		MaximumRange: unit.MustCreateDistance(s.Table.RangeM, unit.DistanceMeter),
	}, nil
}

func (s Scenario) ammunition() (ballistics.Ammunition, error) {
	function, err := ballistics.ParseDragFunction(strings.ToUpper(s.Projectile.DragFunction))
	if err != nil {
		return ballistics.Ammunition{}, fmt.Errorf("projectile: %w", err)
	}
	var bc ballistics.BallisticCoefficient
	if len(s.Projectile.DragCurve) > 0 {
		points := make([]ballistics.DragPoint, len(s.Projectile.DragCurve))
		for i, p := range s.Projectile.DragCurve {
			points[i] = ballistics.DragPoint{Mach: p[0], Cd: p[1]}
		}
		table, err := ballistics.CreateDragTable(points)
		if err != nil {
			return ballistics.Ammunition{}, fmt.Errorf("projectile drag curve: %w", err)
		}
		bc, err = ballistics.CreateCustomBallisticCoefficient(s.Projectile.BC, function, table)
		if err != nil {
			return ballistics.Ammunition{}, fmt.Errorf("projectile: %w", err)
		}
	} else if bc, err = ballistics.CreateBallisticCoefficient(s.Projectile.BC, function); err != nil {
		return ballistics.Ammunition{}, fmt.Errorf("projectile: %w", err)
	}

	projectile, err := ballistics.CreateProjectile(bc,
		unit.MustCreateDistance(s.Projectile.DiameterIn, unit.DistanceInch),
		unit.MustCreateWeight(s.Projectile.WeightGr, unit.WeightGrain))
	if err != nil {
		return ballistics.Ammunition{}, fmt.Errorf("projectile: %w", err)
	}
	ammunition, err := ballistics.CreateAmmunition(projectile, unit.MustCreateVelocity(s.MuzzleVelocityMS, unit.VelocityMPS))
	if err != nil {
		return ballistics.Ammunition{}, fmt.Errorf("ammunition: %w", err)
	}
	return ammunition, nil
}

func (c Conditions) build() (ballistics.Conditions, error) {
	var atmosphere ballistics.Atmosphere
	var err error
	if c.Atmosphere.AltitudeM != nil {
		atmosphere, err = ballistics.CreateICAOAtmosphere(unit.MustCreateDistance(*c.Atmosphere.AltitudeM, unit.DistanceMeter))
	} else {
		atmosphere, err = ballistics.CreateAtmosphere(
			unit.MustCreatePressure(c.Atmosphere.PressureHPa, unit.PressureHP),
			unit.MustCreateTemperature(c.Atmosphere.TemperatureC, unit.TemperatureCelsius),
			c.Atmosphere.Humidity)
	}
	if err != nil {
		return ballistics.Conditions{}, fmt.Errorf("atmosphere: %w", err)
	}

	wind, err := ballistics.CreateWind(
		unit.MustCreateVelocity(c.Wind.SpeedMPS, unit.VelocityMPS),
		unit.MustCreateAngular(c.Wind.DirectionDeg, unit.AngularDegree))
	if err != nil {
		return ballistics.Conditions{}, fmt.Errorf("wind: %w", err)
	}

	shooter, err := ballistics.CreateShooter(
		unit.MustCreateAngular(c.Shooter.LineOfSightDeg, unit.AngularDegree),
		unit.MustCreateAngular(c.Shooter.BearingDeg, unit.AngularDegree),
		unit.MustCreateAngular(c.Shooter.LatitudeDeg, unit.AngularDegree))
	if err != nil {
		return ballistics.Conditions{}, fmt.Errorf("shooter: %w", err)
	}
	if c.Shooter.GravityMPS2 != nil {
		if shooter, err = shooter.WithGravity(unit.MustCreateAcceleration(*c.Shooter.GravityMPS2, unit.AccelerationMPS2)); err != nil {
			return ballistics.Conditions{}, fmt.Errorf("shooter: %w", err)
		}
	}

	step := time.Duration(c.TimeStepMs * float64(time.Millisecond))
	conditions, err := ballistics.CreateConditions(atmosphere, wind, shooter, step)
	if err != nil {
		return ballistics.Conditions{}, err
	}
	return conditions, nil
}
