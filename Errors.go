package go_ballisticsolver

import (
	"errors"
	"fmt"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

var (
	//ErrInvalidTable is returned when a drag table has less than two points or the keys aren't strictly increasing
	ErrInvalidTable = errors.New("invalid drag table")
	//ErrOutOfRange is returned when a physical input is outside of its valid domain
	ErrOutOfRange = errors.New("value out of range")
	//ErrUnreachableZero is returned when the zero requires the muzzle pitch above the 45° ceiling
	ErrUnreachableZero = errors.New("zero is unreachable")
	//ErrConvergenceStalled is returned when the pitch adjustment decays without satisfying the tolerance
	ErrConvergenceStalled = errors.New("zero search stalled")
	//ErrRangeExceedsTrajectory is returned when the trajectory ends before the requested distance
	ErrRangeExceedsTrajectory = errors.New("range exceeds trajectory")
)

//OutOfRangeError describes an input value outside of its valid domain
type OutOfRangeError struct {
	Name     string
	Min, Max float64
	Value    float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %g is out of range [%g, %g]", e.Name, e.Value, e.Min, e.Max)
}

//Is makes errors.Is(err, ErrOutOfRange) true
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

//checkRange returns *OutOfRangeError unless min <= value <= max; NaN is never in range
func checkRange(name string, value, min, max float64) error {
	if !(value >= min && value <= max) {
		return &OutOfRangeError{Name: name, Min: min, Max: max, Value: value}
	}
	return nil
}

//ZeroError is returned by the zero search and carries the state the search failed in
type ZeroError struct {
	Err      error
	Distance unit.Distance
	//Pitch is the last pitch a trial run was made with; a candidate rejected
	//above the ceiling or equal to the previous pitch is not reported
	Pitch unit.Angular
	//Iterations counts the candidates considered, the rejected one included
	Iterations int
}

func (e *ZeroError) Error() string {
	return fmt.Sprintf("zero at %s: %v after %d iterations (last pitch %s)",
		e.Distance, e.Err, e.Iterations, e.Pitch)
}

func (e *ZeroError) Unwrap() error {
	return e.Err
}
