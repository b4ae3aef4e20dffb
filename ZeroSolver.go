package go_ballisticsolver

import (
	"math"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

//the longest possible trajectory is traced at 45 degrees
const cMaximumPitch float64 = math.Pi / 4

//ZeroSolution is the result of the successful zero search
type ZeroSolution struct {
	//Pitch is the angle between the line of sight and the barrel
	Pitch unit.Angular
	//Elevation is the height of the trajectory over the line of sight at the zero distance
	Elevation unit.Distance
	//Iterations is the number of the trial runs made
	Iterations int
}

//zeroSearch is the state of the search between two trial runs
type zeroSearch struct {
	pitch      float64 // rad
	adjustment float64 // rad
	elevation  float64 // m
	iterations int
}

//newZeroSearch starts the search so the first candidate is the maximum pitch
func newZeroSearch() zeroSearch {
	return zeroSearch{
		pitch:      0,
		adjustment: 2 * cMaximumPitch,
		elevation:  -1,
	}
}

//next tries the next candidate pitch and returns the state after the trial
func (s zeroSearch) next(simulation Simulation, distance, offset float64) (zeroSearch, error) {
	s.iterations++
	//reverse when going up above the target or going down below the target
	if (s.adjustment > 0) != (s.elevation < offset) {
		s.adjustment = -s.adjustment
	}
	s.adjustment /= 2

	//the state keeps the last pitch actually tried when the candidate is rejected
	candidate := s.pitch + s.adjustment
	if candidate > cMaximumPitch {
		return s, ErrUnreachableZero
	}
	if candidate == s.pitch {
		return s, ErrConvergenceStalled
	}
	s.pitch = candidate

	elevation, ok := elevationAt(simulation.withPitch(s.pitch), distance)
	if !ok {
		return s, ErrRangeExceedsTrajectory
	}
	s.elevation = elevation
	return s, nil
}

//elevationAt runs the simulation to the distance and returns the height of the first
//packet at or past it. The second value is false if the run ends before the distance.
func elevationAt(simulation Simulation, distance float64) (float64, bool) {
	for p := range simulation.Packets() {
		r := p.RelativePosition()
		if r.X >= distance {
			return r.Y, true
		}
	}
	return 0, false
}

//FindZero searches the muzzle pitch so the trajectory crosses the line of sight
//shifted up by the offset at the distance specified, within the tolerance.
//
//The muzzle pitch of the simulation itself is ignored. The error returned
//is *ZeroError wrapping ErrUnreachableZero, ErrConvergenceStalled or ErrRangeExceedsTrajectory.
func (v Simulation) FindZero(distance, offset, tolerance unit.Distance) (ZeroSolution, error) {
	d := distance.In(unit.DistanceMeter)
	o := offset.In(unit.DistanceMeter)
	t := tolerance.In(unit.DistanceMeter)
	if err := checkRange("Zero distance (m)", d, 0, math.MaxFloat64); err != nil {
		return ZeroSolution{}, err
	}
	if err := checkRange("Zero offset (m)", o, -math.MaxFloat64, math.MaxFloat64); err != nil {
		return ZeroSolution{}, err
	}
	if err := checkRange("Zero tolerance (m)", t, 0, math.MaxFloat64); err != nil {
		return ZeroSolution{}, err
	}

	search := newZeroSearch()
	for {
		var err error
		search, err = search.next(v, d, o)
		if err != nil {
			return ZeroSolution{}, &ZeroError{
				Err:        err,
				Distance:   distance,
				Pitch:      unit.MustCreateAngular(search.pitch, unit.AngularRadian),
				Iterations: search.iterations,
			}
		}
		if search.elevation >= o-t && search.elevation <= o+t {
			return ZeroSolution{
				Pitch:      unit.MustCreateAngular(search.pitch, unit.AngularRadian),
				Elevation:  unit.MustCreateDistance(search.elevation, unit.DistanceMeter),
				Iterations: search.iterations,
			}, nil
		}
	}
}

//Zero returns the muzzle pitch found by FindZero
func (v Simulation) Zero(distance, offset, tolerance unit.Distance) (unit.Angular, error) {
	solution, err := v.FindZero(distance, offset, tolerance)
	if err != nil {
		return unit.Angular{}, err
	}
	return solution.Pitch, nil
}
