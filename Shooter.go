package go_ballisticsolver

import (
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/vector"
)

const cEarthAngularVelocity float64 = 7.2921159e-5 // rad/s
const cStandardGravity float64 = 9.80665           // m/s²

//Shooter keeps the orientation of the shot on the Earth
type Shooter struct {
	lineOfSight unit.Angular
	bearing     unit.Angular
	latitude    unit.Angular
	gravity     unit.Acceleration
}

//CreateLevelShooter creates the shooter aiming at the level target northwards on the equator
func CreateLevelShooter() Shooter {
	return Shooter{
		lineOfSight: unit.MustCreateAngular(0, unit.AngularDegree),
		bearing:     unit.MustCreateAngular(0, unit.AngularDegree),
		latitude:    unit.MustCreateAngular(0, unit.AngularDegree),
		gravity:     unit.MustCreateAcceleration(cStandardGravity, unit.AccelerationMPS2),
	}
}

//CreateShooter creates the shooter orientation
//
//lineOfSight - is the angle between lines drawn from the shooter to the target and the horizon. The positive angle
//means that the target is higher and the negative angle means that the target is lower
//
//bearing - is the compass direction of the shot (0 is north, 90 is east)
//
//latitude - is the latitude of the shooter, used for the Coriolis and Eötvös effects
func CreateShooter(lineOfSight, bearing, latitude unit.Angular) (Shooter, error) {
	if err := checkRange("Line of sight (deg)", lineOfSight.In(unit.AngularDegree), -90, 90); err != nil {
		return Shooter{}, err
	}
	if err := checkRange("Bearing (deg)", bearing.In(unit.AngularDegree), -360, 360); err != nil {
		return Shooter{}, err
	}
	if err := checkRange("Latitude (deg)", latitude.In(unit.AngularDegree), -90, 90); err != nil {
		return Shooter{}, err
	}
	return Shooter{
		lineOfSight: lineOfSight,
		bearing:     bearing,
		latitude:    latitude,
		gravity:     unit.MustCreateAcceleration(cStandardGravity, unit.AccelerationMPS2),
	}, nil
}

//WithGravity returns the copy of the shooter with the local gravity changed
func (v Shooter) WithGravity(gravity unit.Acceleration) (Shooter, error) {
	if err := checkRange("Gravity (m/s2)", gravity.In(unit.AccelerationMPS2), 0, 100); err != nil {
		return Shooter{}, err
	}
	v.gravity = gravity
	return v, nil
}

//LineOfSight returns the angle of the line of sight above the horizon
func (v Shooter) LineOfSight() unit.Angular {
	return v.lineOfSight
}

//Bearing returns the compass bearing of the shot
func (v Shooter) Bearing() unit.Angular {
	return v.bearing
}

//Latitude returns the latitude of the shooter
func (v Shooter) Latitude() unit.Angular {
	return v.latitude
}

//Gravity returns the local gravity
func (v Shooter) Gravity() unit.Acceleration {
	return v.gravity
}

//yaw returns the rotation about the vertical axis in radians.
//
//Rotations are counter-clockwise while the bearing goes clockwise,
//so bearing 90 (east) is yaw -90, which points to +Z.
func (v Shooter) yaw() float64 {
	return -v.bearing.In(unit.AngularRadian)
}

//heading returns the horizontal unit vector of the shot direction
func (v Shooter) heading() vector.Vector {
	return vector.Create(1, 0, 0).PivotY(v.yaw())
}

//gravityVector returns the gravity acceleration vector
func (v Shooter) gravityVector() vector.Vector {
	return vector.Create(0, -v.gravity.In(unit.AccelerationMPS2), 0)
}

//omega returns the angular velocity vector of the Earth at the shooter's latitude.
//
//At the equator it points north, at the poles it is vertical.
func (v Shooter) omega() vector.Vector {
	return vector.Create(cEarthAngularVelocity, 0, 0).PivotZ(v.latitude.In(unit.AngularRadian))
}
