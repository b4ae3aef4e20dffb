package go_ballisticsolver

import (
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/vector"
)

//Wind keeps the velocity and the direction of the wind
type Wind struct {
	velocity  unit.Velocity
	direction unit.Angular
}

//Velocity returns the wind speed
func (v Wind) Velocity() unit.Velocity {
	return v.velocity
}

//Direction returns the direction the wind blows from, relative to the line of fire
func (v Wind) Direction() unit.Angular {
	return v.direction
}

//CreateNoWind creates calm conditions
func CreateNoWind() Wind {
	return Wind{
		velocity:  unit.MustCreateVelocity(0, unit.VelocityMPS),
		direction: unit.MustCreateAngular(0, unit.AngularDegree),
	}
}

//CreateWind creates the wind
//
//direction - is the direction the wind blows from, measured clockwise from the line of fire:
//0 is a headwind, 90 blows from the right, 180 is a tailwind
func CreateWind(windVelocity unit.Velocity, direction unit.Angular) (Wind, error) {
	if err := checkRange("Wind velocity (m/s)", windVelocity.In(unit.VelocityMPS), 0, 200); err != nil {
		return Wind{}, err
	}
	if err := checkRange("Wind direction (deg)", direction.In(unit.AngularDegree), -360, 360); err != nil {
		return Wind{}, err
	}
	return Wind{velocity: windVelocity, direction: direction}, nil
}

//vector returns the absolute wind velocity vector for the shot heading with the yaw specified
func (v Wind) vector(yaw float64) vector.Vector {
	return vector.Create(-v.velocity.In(unit.VelocityMPS), 0, 0).
		PivotY(yaw - v.direction.In(unit.AngularRadian))
}
