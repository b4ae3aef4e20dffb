package go_ballisticsolver

import (
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/vector"
)

//Acceleration returns the acceleration of the projectile moving with the velocity specified (m/s, absolute frame).
//
//It is the sum of the drag deceleration, the gravity and the Coriolis acceleration.
func (v Simulation) Acceleration(velocity vector.Vector) vector.Vector {
	return v.dragForce(velocity).MultiplyByConst(1 / v.mass).
		Add(v.gravity).
		Add(v.coriolisAcceleration(velocity))
}

//dragForce returns the aerodynamic drag force (N), opposite to the velocity relative to the air
func (v Simulation) dragForce(velocity vector.Vector) vector.Vector {
	relative := velocity.Subtract(v.wind)
	speed := relative.Magnitude()
	if speed == 0 {
		return vector.Zero()
	}
	cd := v.table.Lookup(speed / v.speedOfSound)
	return relative.MultiplyByConst(-v.dragFactor * cd * speed)
}

//coriolisAcceleration returns -2Ω×v
//
//In the northern hemisphere it always pushes the projectile to the right,
//a shot to the east is lifted and a shot to the west is pressed down
func (v Simulation) coriolisAcceleration(velocity vector.Vector) vector.Vector {
	return v.omega.Cross(velocity).MultiplyByConst(-2)
}

//mach returns the velocity relative to the air in the speed of sound units
func (v Simulation) mach(velocity vector.Vector) float64 {
	return velocity.Subtract(v.wind).Magnitude() / v.speedOfSound
}
