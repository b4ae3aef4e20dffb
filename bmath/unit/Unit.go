//Package unit provides the typed physical quantities used by the solver.
//
//Every quantity keeps its value in the SI base unit and remembers the unit
//it was created in, so it can be printed back in the same units.
package unit

import (
	"fmt"
	"math"
)

//linearUnits is a conversion table from a unit to the SI base unit of a quantity
type linearUnits struct {
	quantity string
	factors  map[byte]float64
}

func (l linearUnits) toBase(value float64, units byte) (float64, error) {
	f, ok := l.factors[units]
	if !ok {
		return 0, fmt.Errorf("%s: unit %d is not supported", l.quantity, units)
	}
	return value * f, nil
}

func (l linearUnits) fromBase(value float64, units byte) (float64, error) {
	f, ok := l.factors[units]
	if !ok {
		return 0, fmt.Errorf("%s: unit %d is not supported", l.quantity, units)
	}
	return value / f, nil
}

func checkFinite(quantity string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s: value %v is not a finite number", quantity, value)
	}
	return nil
}

func format(value float64, accuracy int, name string) string {
	return fmt.Sprintf("%.*f%s", accuracy, value, name)
}
