package go_ballisticsolver_test

import (
	"math"
	"testing"
	"time"

	"github.com/gehtsoft-usa/go_ballisticsolver"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

func assertEqual(t *testing.T, a, b, accuracy float64, name string) {
	t.Helper()
	if math.Abs(a-b) > accuracy {
		t.Errorf("Assertion %s failed (%f/%f)", name, a, b)
	}
}

//createAmmunition creates 9.1g .308 bullet with G1 BC 0.5 fired at 800 m/s
func createAmmunition(t *testing.T, velocity float64) go_ballisticsolver.Ammunition {
	t.Helper()
	bc, err := go_ballisticsolver.CreateBallisticCoefficient(0.5, go_ballisticsolver.DragFunctionG1)
	if err != nil {
		t.Fatal(err)
	}
	projectile, err := go_ballisticsolver.CreateProjectile(bc,
		unit.MustCreateDistance(0.308, unit.DistanceInch),
		unit.MustCreateWeight(9.1, unit.WeightGram))
	if err != nil {
		t.Fatal(err)
	}
	ammo, err := go_ballisticsolver.CreateAmmunition(projectile, unit.MustCreateVelocity(velocity, unit.VelocityMPS))
	if err != nil {
		t.Fatal(err)
	}
	return ammo
}

func createShooter(t *testing.T, lineOfSight, bearing, latitude float64) go_ballisticsolver.Shooter {
	t.Helper()
	shooter, err := go_ballisticsolver.CreateShooter(
		unit.MustCreateAngular(lineOfSight, unit.AngularDegree),
		unit.MustCreateAngular(bearing, unit.AngularDegree),
		unit.MustCreateAngular(latitude, unit.AngularDegree))
	if err != nil {
		t.Fatal(err)
	}
	return shooter
}

func createConditions(t *testing.T, wind go_ballisticsolver.Wind, shooter go_ballisticsolver.Shooter, step time.Duration) go_ballisticsolver.Conditions {
	t.Helper()
	conditions, err := go_ballisticsolver.CreateConditions(go_ballisticsolver.CreateDefaultAtmosphere(), wind, shooter, step)
	if err != nil {
		t.Fatal(err)
	}
	return conditions
}

func createBoreScope(t *testing.T) go_ballisticsolver.Scope {
	t.Helper()
	scope, err := go_ballisticsolver.CreateScope(
		unit.MustCreateDistance(0, unit.DistanceMeter),
		unit.MustCreateDistance(0, unit.DistanceMeter),
		unit.MustCreateAngular(0, unit.AngularDegree))
	if err != nil {
		t.Fatal(err)
	}
	return scope
}

func createSimulation(t *testing.T, ammo go_ballisticsolver.Ammunition, scope go_ballisticsolver.Scope, conditions go_ballisticsolver.Conditions) go_ballisticsolver.Simulation {
	t.Helper()
	sim, err := go_ballisticsolver.CreateSimulation(ammo, scope, conditions)
	if err != nil {
		t.Fatal(err)
	}
	return sim
}

//createDefaultSimulation is the 800 m/s shot under the standard conditions with the default scope
func createDefaultSimulation(t *testing.T) go_ballisticsolver.Simulation {
	t.Helper()
	return createSimulation(t, createAmmunition(t, 800), go_ballisticsolver.CreateDefaultScope(), go_ballisticsolver.CreateDefaultConditions())
}

//packetAt returns the first packet at or past the distance (m)
func packetAt(t *testing.T, sim go_ballisticsolver.Simulation, distance float64) go_ballisticsolver.Packet {
	t.Helper()
	for p := range sim.Packets() {
		if p.Distance().In(unit.DistanceMeter) >= distance {
			return p
		}
	}
	t.Fatalf("the trajectory ends before %.0fm", distance)
	return go_ballisticsolver.Packet{}
}

func meters(v float64) unit.Distance {
	return unit.MustCreateDistance(v, unit.DistanceMeter)
}
