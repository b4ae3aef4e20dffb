package go_ballisticsolver

import (
	"iter"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/vector"
)

const cMaximumDrop float64 = -15000 // ft below the line of sight

//IteratorState is the state of one run of the simulation
type IteratorState byte

const (
	//Running means that the iterator can produce more packets
	Running IteratorState = iota
	//Terminated means that the run is over and no packet will be produced anymore
	Terminated
)

func (s IteratorState) String() string {
	if s == Running {
		return "running"
	}
	return "terminated"
}

//Iterator is one run of the simulation. It advances the time, the position and the velocity
//of the projectile step by step and returns the state before each step.
//
//The iterator is not safe for the concurrent use, create one iterator per goroutine.
type Iterator struct {
	simulation *Simulation
	state      IteratorState
	time       float64
	position   vector.Vector
	velocity   vector.Vector
	dropFloor  float64
	up         vector.Vector
}

//Iterator starts a new run of the simulation
func (v Simulation) Iterator() *Iterator {
	simulation := v
	shooter := simulation.conditions.Shooter()
	return &Iterator{
		simulation: &simulation,
		state:      Running,
		position:   vector.Zero(),
		velocity:   simulation.launchVelocity(),
		dropFloor:  unit.MustCreateDistance(cMaximumDrop, unit.DistanceFoot).In(unit.DistanceMeter),
		up:         vector.Create(0, 1, 0).PivotZ(shooter.LineOfSight().In(unit.AngularRadian)).PivotY(shooter.yaw()),
	}
}

//Packets returns the sequence of all the packets of a new run of the simulation
func (v Simulation) Packets() iter.Seq[Packet] {
	return func(yield func(Packet) bool) {
		it := v.Iterator()
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

//State returns the state of the run
func (it *Iterator) State() IteratorState {
	return it.state
}

//Next makes one integration step and returns the state of the projectile before the step,
//so the first packet is always the muzzle (time 0, position 0).
//
//The second value is false when the run is terminated.
func (it *Iterator) Next() (Packet, bool) {
	if it.state == Terminated {
		return Packet{}, false
	}

	packet := Packet{
		simulation: it.simulation,
		time:       it.time,
		position:   it.position,
		velocity:   it.velocity,
	}

	dt := it.simulation.dt
	acceleration := it.simulation.Acceleration(it.velocity)
	//second equation of motion
	position := it.position.
		Add(it.velocity.MultiplyByConst(dt)).
		Add(acceleration.MultiplyByConst(dt * dt / 2))
	//first equation of motion
	it.velocity = it.velocity.Add(acceleration.MultiplyByConst(dt))
	it.time += dt

	stop := it.forwardStalled(packet.position, position) || it.belowDropFloor(position)
	it.position = position
	if stop {
		it.state = Terminated
		return Packet{}, false
	}
	return packet, true
}

//forwardStalled is true when the projectile stopped moving downrange: the horizontal
//component of the position along the bearing did not change during the step.
//
//It is a rough approximation and may stop the run one step early or late.
func (it *Iterator) forwardStalled(previous, current vector.Vector) bool {
	heading := it.simulation.conditions.Shooter().heading()
	return previous.MultiplyByVector(heading) == current.MultiplyByVector(heading)
}

//belowDropFloor is true when the projectile fell too deep below the line of sight.
//
//The depth is measured across the line of sight, so a steep uphill or downhill
//shot is not cut short while it follows the line.
func (it *Iterator) belowDropFloor(position vector.Vector) bool {
	return position.MultiplyByVector(it.up) < it.dropFloor
}
