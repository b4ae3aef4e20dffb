package go_ballisticsolver

import (
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/vector"
)

//Packet is the snapshot of the projectile at one moment of the run
type Packet struct {
	simulation *Simulation
	time       float64
	position   vector.Vector
	velocity   vector.Vector
}

//Time returns the time since the shot
func (p Packet) Time() Timespan {
	return Timespan{time: p.time}
}

//Position returns the position of the projectile relative to the muzzle in the absolute frame
//(x - north, y - up, z - east), in meters
func (p Packet) Position() vector.Vector {
	return p.position
}

//VelocityVector returns the velocity of the projectile in the absolute frame, in m/s
func (p Packet) VelocityVector() vector.Vector {
	return p.velocity
}

//Velocity returns the speed of the projectile
func (p Packet) Velocity() unit.Velocity {
	return unit.MustCreateVelocity(p.velocity.Magnitude(), unit.VelocityMPS)
}

//Mach returns the speed of the projectile relative to the air in the speed of sound units
func (p Packet) Mach() float64 {
	return p.simulation.mach(p.velocity)
}

//Energy returns the kinetic energy of the projectile
func (p Packet) Energy() unit.Energy {
	speed := p.velocity.Magnitude()
	return unit.MustCreateEnergy(p.simulation.mass*speed*speed/2, unit.EnergyJoule)
}

//RelativePosition returns the position of the projectile in the sight frame:
//x - along the line of sight, y - up from the line of sight, z - right of the line of sight, in meters
func (p Packet) RelativePosition() vector.Vector {
	return p.simulation.relativePosition(p.position)
}

//Distance returns the distance along the line of sight
func (p Packet) Distance() unit.Distance {
	return unit.MustCreateDistance(p.RelativePosition().X, unit.DistanceMeter)
}

//Elevation returns the distance between the projectile and the line of sight,
//the negative value means that the projectile is below the line of sight (drop)
func (p Packet) Elevation() unit.Distance {
	return unit.MustCreateDistance(p.RelativePosition().Y, unit.DistanceMeter)
}

//Windage returns the distance between the projectile and the line of sight,
//the positive value means that the projectile is to the right
func (p Packet) Windage() unit.Distance {
	return unit.MustCreateDistance(p.RelativePosition().Z, unit.DistanceMeter)
}

//ElevationAdjustment returns the angle the sight must be moved by to bring the point of impact
//to the height offset specified. The negative value means "dial down".
func (p Packet) ElevationAdjustment(offset, tolerance unit.Distance) unit.Angular {
	r := p.RelativePosition()
	return unit.MustCreateAngular(adjustment(r.X, r.Y, offset, tolerance), unit.AngularRadian)
}

//WindageAdjustment returns the angle the sight must be moved by to bring the point of impact
//to the horizontal offset specified. The negative value means "dial left".
func (p Packet) WindageAdjustment(offset, tolerance unit.Distance) unit.Angular {
	r := p.RelativePosition()
	return unit.MustCreateAngular(adjustment(r.X, r.Z, offset, tolerance), unit.AngularRadian)
}

//adjustment returns the angle between the directions to (distance, actual) and (distance, desired),
//negative when the actual value is not below the desired one
func adjustment(distance, actual float64, offset, tolerance unit.Distance) float64 {
	desired := offset.In(unit.DistanceMeter)
	sign := 1.0
	if actual >= desired-tolerance.In(unit.DistanceMeter) {
		sign = -1
	}
	return sign * vector.Create(distance, actual, 0).Angle(vector.Create(distance, desired, 0))
}
