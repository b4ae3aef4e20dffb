package go_ballisticsolver

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

//DragFunction identifies one of the standard projectile drag functions
type DragFunction byte

const (
	//DragFunctionG1 is the flat base projectile with 2 caliber ogive
	DragFunctionG1 DragFunction = 1
	//DragFunctionG5 is the boat tail projectile with 6.19 caliber ogive
	DragFunctionG5 DragFunction = 3
	//DragFunctionG7 is the long boat tail projectile with 10 caliber tangent ogive
	DragFunctionG7 DragFunction = 5
	//DragFunctionG8 is the flat base projectile with 10 caliber secant ogive
	DragFunctionG8 DragFunction = 6
)

func (f DragFunction) String() string {
	switch f {
	case DragFunctionG1:
		return "G1"
	case DragFunctionG5:
		return "G5"
	case DragFunctionG7:
		return "G7"
	case DragFunctionG8:
		return "G8"
	}
	return fmt.Sprintf("DragFunction(%d)", byte(f))
}

//ParseDragFunction returns the drag function by its name (G1, G5, G7 or G8)
func ParseDragFunction(name string) (DragFunction, error) {
	for _, f := range []DragFunction{DragFunctionG1, DragFunctionG5, DragFunctionG7, DragFunctionG8} {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown drag function %q", ErrOutOfRange, name)
}

//DragPoint is one point of a drag curve
type DragPoint struct {
	Mach float64
	Cd   float64
}

//DragTable is a drag coefficient curve as a function of Mach number.
//
//The table is immutable and can be shared between any number of simulations.
type DragTable struct {
	points []DragPoint
}

//CreateDragTable creates a drag table from points ordered by Mach number
func CreateDragTable(points []DragPoint) (*DragTable, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: %d points, at least 2 required", ErrInvalidTable, len(points))
	}
	for i, p := range points {
		if math.IsNaN(p.Mach) || math.IsNaN(p.Cd) {
			return nil, fmt.Errorf("%w: NaN at point %d", ErrInvalidTable, i)
		}
		if i > 0 && !(p.Mach > points[i-1].Mach) {
			return nil, fmt.Errorf("%w: Mach %g at point %d doesn't follow %g",
				ErrInvalidTable, p.Mach, i, points[i-1].Mach)
		}
	}
	return &DragTable{points: append([]DragPoint(nil), points...)}, nil
}

//MustCreateDragTable creates a drag table but panics instead of returning an error
func MustCreateDragTable(points []DragPoint) *DragTable {
	t, err := CreateDragTable(points)
	if err != nil {
		panic(err)
	}
	return t
}

//Points returns a copy of the table points
func (t *DragTable) Points() []DragPoint {
	return append([]DragPoint(nil), t.points...)
}

//Lookup returns the drag coefficient for the Mach number.
//
//Values outside of the table are clamped to the first and the last points,
//values between points are interpolated linearly.
func (t *DragTable) Lookup(mach float64) float64 {
	first, last := t.points[0], t.points[len(t.points)-1]
	if mach <= first.Mach {
		return first.Cd
	}
	if mach >= last.Mach {
		return last.Cd
	}

	lo, hi := 0, len(t.points)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if t.points[mid].Mach <= mach {
			lo = mid
		} else {
			hi = mid
		}
	}
	p0, p1 := t.points[lo], t.points[hi]
	if p1.Mach == p0.Mach {
		return p0.Cd
	}
	return p0.Cd + (p1.Cd-p0.Cd)*(mach-p0.Mach)/(p1.Mach-p0.Mach)
}

var standardTables = map[DragFunction]*DragTable{
	DragFunctionG1: MustCreateDragTable(g1Points),
	DragFunctionG5: MustCreateDragTable(g5Points),
	DragFunctionG7: MustCreateDragTable(g7Points),
	DragFunctionG8: MustCreateDragTable(g8Points),
}

//StandardDragTable returns the table of a standard drag function
func StandardDragTable(f DragFunction) (*DragTable, error) {
	t, ok := standardTables[f]
	if !ok {
		return nil, fmt.Errorf("%w: unknown drag function %s", ErrOutOfRange, f)
	}
	return t, nil
}

//The ballistic coefficient (BC) of a body is a measure of its
//ability to overcome air resistance in flight.
//
//The small arm ballistics, BC is expressed vs
//a standard projectile. Different ballistic tables
//uses different standard projectiles, for example G1 uses
//flat based 2 caliber length with a 2 caliber ogive
//
//G1 and G7 are the most used for small arms ballistics
type BallisticCoefficient struct {
	value    float64
	function DragFunction
	table    *DragTable
}

//CreateBallisticCoefficient creates the ballistic coefficient against one of the standard drag functions
func CreateBallisticCoefficient(value float64, function DragFunction) (BallisticCoefficient, error) {
	table, err := StandardDragTable(function)
	if err != nil {
		return BallisticCoefficient{}, fmt.Errorf("BallisticCoefficient: %w", err)
	}
	return CreateCustomBallisticCoefficient(value, function, table)
}

//CreateCustomBallisticCoefficient creates the ballistic coefficient against a custom drag table,
//for example a curve measured with a doppler radar
func CreateCustomBallisticCoefficient(value float64, function DragFunction, table *DragTable) (BallisticCoefficient, error) {
	if err := checkRange("BallisticCoefficient", value, math.SmallestNonzeroFloat64, math.MaxFloat64); err != nil {
		return BallisticCoefficient{}, err
	}
	if table == nil {
		return BallisticCoefficient{}, fmt.Errorf("BallisticCoefficient: %w: no drag table", ErrInvalidTable)
	}
	return BallisticCoefficient{value: value, function: function, table: table}, nil
}

//Value returns the ballistic coefficient value
func (v BallisticCoefficient) Value() float64 {
	return v.value
}

//Function returns the drag function the coefficient is expressed against
func (v BallisticCoefficient) Function() DragFunction {
	return v.function
}

//Table returns the drag table of the coefficient
func (v BallisticCoefficient) Table() *DragTable {
	return v.table
}

//sectionalDensity returns the sectional density in lb/in², the unit ballistic coefficients are expressed in
func sectionalDensity(weight unit.Weight, diameter unit.Distance) float64 {
	d := diameter.In(unit.DistanceInch)
	return weight.In(unit.WeightPound) / (d * d)
}
