package go_ballisticsolver

import (
	"math"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

//Timespan is the time of flight
type Timespan struct {
	time float64
}

//TotalSeconds returns the time of flight in seconds including the fraction
func (v Timespan) TotalSeconds() float64 {
	return v.time
}

//Seconds returns the whole seconds past the last whole minute
func (v Timespan) Seconds() float64 {
	return math.Mod(math.Floor(v.time), 60)
}

//Minutes returns the whole minutes past the last whole hour
func (v Timespan) Minutes() float64 {
	return math.Mod(math.Floor(v.time/60), 60)
}

//TrajectoryData is one row of a drop table: a packet measured against the line of sight.
type TrajectoryData struct {
	time              Timespan
	travelDistance    unit.Distance
	velocity          unit.Velocity
	mach              float64
	drop              unit.Distance
	dropAdjustment    unit.Angular
	windage           unit.Distance
	windageAdjustment unit.Angular
	energy            unit.Energy
	optimalGameWeight unit.Weight
}

//newTrajectoryData measures the packet. The adjustments are calculated to bring the point of impact
//to the line of sight moved by the offsets.
func newTrajectoryData(p Packet, dropOffset, windageOffset, tolerance unit.Distance) TrajectoryData {
	r := p.RelativePosition()
	weight := p.simulation.ammunition.Bullet().BulletWeight().In(unit.WeightGrain)
	velocity := p.Velocity()
	return TrajectoryData{
		time:              p.Time(),
		travelDistance:    unit.MustCreateDistance(r.X, unit.DistanceMeter),
		velocity:          velocity,
		mach:              p.Mach(),
		drop:              unit.MustCreateDistance(r.Y, unit.DistanceMeter),
		dropAdjustment:    p.ElevationAdjustment(dropOffset, tolerance),
		windage:           unit.MustCreateDistance(r.Z, unit.DistanceMeter),
		windageAdjustment: p.WindageAdjustment(windageOffset, tolerance),
		energy:            p.Energy(),
		optimalGameWeight: unit.MustCreateWeight(calculateOgv(weight, velocity.In(unit.VelocityFPS)), unit.WeightPound),
	}
}

//Time returns the time of flight
func (v TrajectoryData) Time() Timespan {
	return v.time
}

//TravelledDistance returns the distance along the line of sight
func (v TrajectoryData) TravelledDistance() unit.Distance {
	return v.travelDistance
}

//Velocity returns the speed of the projectile over the ground
func (v TrajectoryData) Velocity() unit.Velocity {
	return v.velocity
}

//MachVelocity returns the speed of the projectile through the air in Mach
func (v TrajectoryData) MachVelocity() float64 {
	return v.mach
}

//Drop returns the height of the projectile over the line of sight, negative below it
func (v TrajectoryData) Drop() unit.Distance {
	return v.drop
}

//DropAdjustment returns the elevation correction that moves the impact onto the drop offset
func (v TrajectoryData) DropAdjustment() unit.Angular {
	return v.dropAdjustment
}

//Windage returns the sideways displacement, positive to the right
func (v TrajectoryData) Windage() unit.Distance {
	return v.windage
}

//WindageAdjustment returns the windage correction that moves the impact onto the windage offset
func (v TrajectoryData) WindageAdjustment() unit.Angular {
	return v.windageAdjustment
}

//Energy returns the kinetic energy over the ground
func (v TrajectoryData) Energy() unit.Energy {
	return v.energy
}

//OptimalGameWeight returns the heaviest game the projectile is still expected to take cleanly
func (v TrajectoryData) OptimalGameWeight() unit.Weight {
	return v.optimalGameWeight
}

//calculateOgv takes grains and feet per second and returns pounds
func calculateOgv(bulletWeight, velocity float64) float64 {
	return math.Pow(bulletWeight, 2) * math.Pow(velocity, 3) * 1.5e-12
}
