package go_ballisticsolver

import (
	"fmt"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

//TrajectoryCalculator solves the shot of the ammunition through the scope. The weapon is zeroed under
//the zero conditions and the trajectory is then calculated under the solve conditions, e.g.
//zeroed at the range in the standard atmosphere and fired in the field.
type TrajectoryCalculator struct {
	ammunition      Ammunition
	scope           Scope
	zeroConditions  Conditions
	solveConditions Conditions
	zeroOffset      unit.Distance
	zeroTolerance   unit.Distance
}

//CreateTrajectoryCalculator creates and instance of the trajectory calculator
//
//The zero offset is 0 and the zero tolerance is 5 mm by default
func CreateTrajectoryCalculator(ammunition Ammunition, scope Scope, zeroConditions, solveConditions Conditions) TrajectoryCalculator {
	return TrajectoryCalculator{
		ammunition:      ammunition,
		scope:           scope,
		zeroConditions:  zeroConditions,
		solveConditions: solveConditions,
		zeroOffset:      unit.MustCreateDistance(0, unit.DistanceMeter),
		zeroTolerance:   unit.MustCreateDistance(5, unit.DistanceMillimeter),
	}
}

//ZeroOffset returns the height over the line of sight the trajectory crosses at the zero distance
func (v TrajectoryCalculator) ZeroOffset() unit.Distance {
	return v.zeroOffset
}

//SetZeroOffset sets the height over the line of sight the trajectory crosses at the zero distance
func (v *TrajectoryCalculator) SetZeroOffset(x unit.Distance) {
	v.zeroOffset = x
}

//ZeroTolerance returns the accuracy of the zero search
func (v TrajectoryCalculator) ZeroTolerance() unit.Distance {
	return v.zeroTolerance
}

//SetZeroTolerance sets the accuracy of the zero search.
//
//The smaller value is, the more trial runs the search makes.
func (v *TrajectoryCalculator) SetZeroTolerance(x unit.Distance) {
	v.zeroTolerance = x
}

//Ammunition returns the ammunition
func (v TrajectoryCalculator) Ammunition() Ammunition {
	return v.ammunition
}

//Scope returns the scope
func (v TrajectoryCalculator) Scope() Scope {
	return v.scope
}

//ZeroConditions returns the conditions the weapon is zeroed under
func (v TrajectoryCalculator) ZeroConditions() Conditions {
	return v.zeroConditions
}

//SolveConditions returns the conditions the shot is fired under
func (v TrajectoryCalculator) SolveConditions() Conditions {
	return v.solveConditions
}

//Zero finds the muzzle pitch under the zero conditions
func (v TrajectoryCalculator) Zero(distance, offset, tolerance unit.Distance) (ZeroSolution, error) {
	simulation, err := CreateSimulation(v.ammunition, v.scope, v.zeroConditions)
	if err != nil {
		return ZeroSolution{}, fmt.Errorf("TrajectoryCalculator: zero simulation: %w", err)
	}
	return simulation.FindZero(distance, offset, tolerance)
}

//SolveSimulation creates the simulation of the shot under the solve conditions with the muzzle pitch specified
func (v TrajectoryCalculator) SolveSimulation(pitch unit.Angular) (Simulation, error) {
	simulation, err := CreateSimulation(v.ammunition, v.scope, v.solveConditions)
	if err != nil {
		return Simulation{}, fmt.Errorf("TrajectoryCalculator: solve simulation: %w", err)
	}
	return simulation.WithMuzzlePitch(pitch), nil
}

//DropTable zeroes the weapon at the distance using the zero offset and tolerance configured,
//then calculates the trajectory under the solve conditions.
//
//No table is returned if the zero search fails.
func (v TrajectoryCalculator) DropTable(zeroDistance, step, maximumRange unit.Distance) (*DropTable, ZeroSolution, error) {
	zero, err := v.Zero(zeroDistance, v.zeroOffset, v.zeroTolerance)
	if err != nil {
		return nil, ZeroSolution{}, err
	}
	simulation, err := v.SolveSimulation(zero.Pitch)
	if err != nil {
		return nil, ZeroSolution{}, err
	}
	table, err := BuildDropTable(simulation, DropTableRequest{
		Step:          step,
		MaximumRange:  maximumRange,
		DropOffset:    unit.MustCreateDistance(0, unit.DistanceMeter),
		WindageOffset: unit.MustCreateDistance(0, unit.DistanceMeter),
		Tolerance:     v.zeroTolerance,
	})
	if err != nil {
		return nil, ZeroSolution{}, err
	}
	return table, zero, nil
}
