package go_ballisticsolver

import (
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/vector"
)

//Simulation is the immutable description of one shot: the ammunition fired
//through the scope under the conditions with the muzzle raised by the pitch angle.
//
//The simulation may be shared between any number of goroutines. Every call of
//Iterator or Packets starts a new independent run.
type Simulation struct {
	ammunition  Ammunition
	scope       Scope
	conditions  Conditions
	muzzlePitch unit.Angular

	//values derived once from the inputs above
	table        *DragTable
	mass         float64
	dragFactor   float64 // 0.5 * rho * area * i
	speedOfSound float64
	wind         vector.Vector
	gravity      vector.Vector
	omega        vector.Vector
	dt           float64
}

//CreateSimulation creates the simulation of a flat fired shot (the muzzle pitch is zero)
func CreateSimulation(ammunition Ammunition, scope Scope, conditions Conditions) (Simulation, error) {
	bullet := ammunition.Bullet()
	if bullet.BallisticCoefficient().Table() == nil {
		return Simulation{}, ErrInvalidTable
	}
	if err := checkRange("Muzzle velocity (m/s)", ammunition.MuzzleVelocity().In(unit.VelocityMPS), 1, 10000); err != nil {
		return Simulation{}, err
	}
	if err := checkRange("Time step (s)", conditions.TimeStep().Seconds(), 1e-9, 1); err != nil {
		return Simulation{}, err
	}

	atmosphere := conditions.Atmosphere()
	shooter := conditions.Shooter()
	return Simulation{
		ammunition:   ammunition,
		scope:        scope,
		conditions:   conditions,
		muzzlePitch:  unit.MustCreateAngular(0, unit.AngularRadian),
		table:        bullet.BallisticCoefficient().Table(),
		mass:         bullet.mass(),
		dragFactor:   0.5 * atmosphere.Density() * bullet.area() * bullet.FormFactor(),
		speedOfSound: atmosphere.SpeedOfSound().In(unit.VelocityMPS),
		wind:         conditions.Wind().vector(shooter.yaw()),
		gravity:      shooter.gravityVector(),
		omega:        shooter.omega(),
		dt:           conditions.TimeStep().Seconds(),
	}, nil
}

//MustCreateSimulation creates the simulation and panics if the inputs are invalid
func MustCreateSimulation(ammunition Ammunition, scope Scope, conditions Conditions) Simulation {
	v, err := CreateSimulation(ammunition, scope, conditions)
	if err != nil {
		panic(err)
	}
	return v
}

//WithMuzzlePitch returns a copy of the simulation with the muzzle raised by the angle
//relative to the line of sight
func (v Simulation) WithMuzzlePitch(pitch unit.Angular) Simulation {
	v.muzzlePitch = pitch
	return v
}

//withPitch is WithMuzzlePitch for the angle in radians
func (v Simulation) withPitch(pitch float64) Simulation {
	v.muzzlePitch = unit.MustCreateAngular(pitch, unit.AngularRadian)
	return v
}

//MuzzlePitch returns the angle between the line of sight and the barrel
func (v Simulation) MuzzlePitch() unit.Angular {
	return v.muzzlePitch
}

//Ammunition returns the ammunition fired
func (v Simulation) Ammunition() Ammunition {
	return v.ammunition
}

//Scope returns the scope of the weapon
func (v Simulation) Scope() Scope {
	return v.scope
}

//Conditions returns the conditions of the shot
func (v Simulation) Conditions() Conditions {
	return v.conditions
}

//launchVelocity returns the velocity of the projectile at the muzzle in the absolute frame:
//the barrel is raised by the muzzle pitch, rolled by the cant, raised by the line of sight
//and turned to the bearing
func (v Simulation) launchVelocity() vector.Vector {
	shooter := v.conditions.Shooter()
	return vector.Create(v.ammunition.MuzzleVelocity().In(unit.VelocityMPS), 0, 0).
		PivotZ(v.muzzlePitch.In(unit.AngularRadian)).
		PivotX(v.scope.Cant().In(unit.AngularRadian)).
		PivotZ(shooter.LineOfSight().In(unit.AngularRadian)).
		PivotY(shooter.yaw())
}

//relativePosition turns the absolute position back into the sight frame
//and moves the origin to the scope
func (v Simulation) relativePosition(position vector.Vector) vector.Vector {
	shooter := v.conditions.Shooter()
	return position.
		PivotY(-shooter.yaw()).
		PivotZ(-shooter.LineOfSight().In(unit.AngularRadian)).
		PivotX(-v.scope.Cant().In(unit.AngularRadian)).
		Subtract(v.scope.position())
}
