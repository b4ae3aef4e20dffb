package go_ballisticsolver

import (
	"math"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/floatmap"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

//DropTable is the trajectory sampled at regular distances, keyed by the distance in meters
type DropTable = floatmap.Map[float64, TrajectoryData]

//DropTableRequest describes the sampling of the trajectory
type DropTableRequest struct {
	//Step is the distance between the rows
	Step unit.Distance
	//MaximumRange is the distance of the last row
	MaximumRange unit.Distance
	//DropOffset and WindageOffset move the point the adjustments are calculated to
	DropOffset    unit.Distance
	WindageOffset unit.Distance
	//Tolerance is used to decide the direction of the adjustments
	Tolerance unit.Distance
}

//BuildDropTable runs the simulation and keeps the first packet at or past each multiple of the step.
//
//When one integration step jumps over several multiples, the packet is kept once
//and the skipped multiples have no row. The run stops after the first packet at or past
//the maximum range, so the table is shorter when the trajectory ends earlier.
func BuildDropTable(simulation Simulation, request DropTableRequest) (*DropTable, error) {
	step := request.Step.In(unit.DistanceMeter)
	maximumRange := request.MaximumRange.In(unit.DistanceMeter)
	if err := checkRange("Drop table step (m)", step, math.SmallestNonzeroFloat64, math.MaxFloat64); err != nil {
		return nil, err
	}
	if err := checkRange("Drop table range (m)", maximumRange, 0, math.MaxFloat64); err != nil {
		return nil, err
	}
	if err := checkRange("Drop table tolerance (m)", request.Tolerance.In(unit.DistanceMeter), 0, math.MaxFloat64); err != nil {
		return nil, err
	}

	table := floatmap.New[float64, TrajectoryData]()
	var k float64
	threshold := 0.0
	for p := range simulation.Packets() {
		distance := p.RelativePosition().X
		if distance >= threshold {
			if err := table.Set(distance, newTrajectoryData(p, request.DropOffset, request.WindageOffset, request.Tolerance)); err != nil {
				return nil, err
			}
			k = math.Max(k+1, math.Floor(distance/step)+1)
			threshold = k * step
		}
		if distance >= maximumRange {
			break
		}
	}
	return table, nil
}
