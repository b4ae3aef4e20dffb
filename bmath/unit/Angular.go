package unit

import (
	"fmt"
	"math"
)

//AngularRadian is the value indicating that the angular value is set in radians
const AngularRadian byte = 0

//AngularDegree is the value indicating that the angular value is set in degrees
const AngularDegree byte = 1

//AngularMOA is the value indicating that the angular value is set in minutes of angle
const AngularMOA byte = 2

//AngularMil is the value indicating that the angular value is set in mils (1/6400 of circle)
const AngularMil byte = 3

//AngularMRad is the value indicating that the angular value is set in milliradians
const AngularMRad byte = 4

//AngularThousand is the value indicating that the angular value is set in thousands (1/6000 of circle)
const AngularThousand byte = 5

//AngularInchesPer100Yd is the value indicating that the angular value is set in inches per 100 yards
const AngularInchesPer100Yd byte = 6

//AngularCmPer100M is the value indicating that the angular value is set in centimeters per 100 meters
const AngularCmPer100M byte = 7

func toRadians(value float64, units byte) (float64, error) {
	switch units {
	case AngularRadian:
		return value, nil
	case AngularDegree:
		return value / 180 * math.Pi, nil
	case AngularMOA:
		return value / 180 * math.Pi / 60, nil
	case AngularMil:
		return value / 3200 * math.Pi, nil
	case AngularMRad:
		return value / 1000, nil
	case AngularThousand:
		return value / 3000 * math.Pi, nil
	case AngularInchesPer100Yd:
		return math.Atan(value / 3600), nil
	case AngularCmPer100M:
		return math.Atan(value / 10000), nil
	}
	return 0, fmt.Errorf("Angular: unit %d is not supported", units)
}

func fromRadians(value float64, units byte) (float64, error) {
	switch units {
	case AngularRadian:
		return value, nil
	case AngularDegree:
		return value * 180 / math.Pi, nil
	case AngularMOA:
		return value * 180 / math.Pi * 60, nil
	case AngularMil:
		return value * 3200 / math.Pi, nil
	case AngularMRad:
		return value * 1000, nil
	case AngularThousand:
		return value * 3000 / math.Pi, nil
	case AngularInchesPer100Yd:
		return math.Tan(value) * 3600, nil
	case AngularCmPer100M:
		return math.Tan(value) * 10000, nil
	}
	return 0, fmt.Errorf("Angular: unit %d is not supported", units)
}

//Angular keeps the value of an angle
type Angular struct {
	value        float64
	defaultUnits byte
}

//CreateAngular creates an angular value.
//
//units are measurement unit and may be any value from
//unit.Angular* constants.
func CreateAngular(value float64, units byte) (Angular, error) {
	if err := checkFinite("Angular", value); err != nil {
		return Angular{}, err
	}
	v, err := toRadians(value, units)
	if err != nil {
		return Angular{}, err
	}
	return Angular{value: v, defaultUnits: units}, nil
}

//MustCreateAngular creates the angular value but panics instead of returned a error
func MustCreateAngular(value float64, units byte) Angular {
	v, err := CreateAngular(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the angle in the specified units
func (v Angular) Value(units byte) (float64, error) {
	return fromRadians(v.value, units)
}

//Convert converts the value into the specified units.
func (v Angular) Convert(units byte) Angular {
	return Angular{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Angular) In(units byte) float64 {
	x, err := fromRadians(v.value, units)
	if err != nil {
		return 0
	}
	return x
}

func (v Angular) String() string {
	x, err := fromRadians(v.value, v.defaultUnits)
	if err != nil {
		return "!error: default units aren't correct"
	}
	switch v.defaultUnits {
	case AngularRadian:
		return format(x, 6, "rad")
	case AngularDegree:
		return format(x, 4, "°")
	case AngularMOA:
		return format(x, 2, "moa")
	case AngularMil:
		return format(x, 2, "mil")
	case AngularMRad:
		return format(x, 2, "mrad")
	case AngularThousand:
		return format(x, 2, "ths")
	case AngularInchesPer100Yd:
		return format(x, 2, "in/100yd")
	case AngularCmPer100M:
		return format(x, 2, "cm/100m")
	}
	return format(x, 6, "?")
}

//Units return the units in which the value is measured
func (v Angular) Units() byte {
	return v.defaultUnits
}
