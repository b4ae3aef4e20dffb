package unit

//DistanceInch is the value indicating that the distance value is set in inches
const DistanceInch byte = 10

//DistanceFoot is the value indicating that the distance value is set in feet
const DistanceFoot byte = 11

//DistanceYard is the value indicating that the distance value is set in yards
const DistanceYard byte = 12

//DistanceMile is the value indicating that the distance value is set in miles
const DistanceMile byte = 13

//DistanceNauticalMile is the value indicating that the distance value is set in nautical miles
const DistanceNauticalMile byte = 14

//DistanceMillimeter is the value indicating that the distance value is set in millimeters
const DistanceMillimeter byte = 15

//DistanceCentimeter is the value indicating that the distance value is set in centimeters
const DistanceCentimeter byte = 16

//DistanceMeter is the value indicating that the distance value is set in meters
const DistanceMeter byte = 17

//DistanceKilometer is the value indicating that the distance value is set in kilometers
const DistanceKilometer byte = 18

//DistanceLine is the value indicating that the distance value is set in lines (1/10 of inch)
const DistanceLine byte = 19

var distanceUnits = linearUnits{
	quantity: "Distance",
	factors: map[byte]float64{
		DistanceInch:         0.0254,
		DistanceFoot:         0.3048,
		DistanceYard:         0.9144,
		DistanceMile:         1609.344,
		DistanceNauticalMile: 1852,
		DistanceMillimeter:   0.001,
		DistanceCentimeter:   0.01,
		DistanceMeter:        1,
		DistanceKilometer:    1000,
		DistanceLine:         0.00254,
	},
}

//Distance structure keeps the distance value
type Distance struct {
	value        float64
	defaultUnits byte
}

//CreateDistance creates a distance value.
//
//units are measurement unit and may be any value from
//unit.Distance* constants.
func CreateDistance(value float64, units byte) (Distance, error) {
	if err := checkFinite("Distance", value); err != nil {
		return Distance{}, err
	}
	v, err := distanceUnits.toBase(value, units)
	if err != nil {
		return Distance{}, err
	}
	return Distance{value: v, defaultUnits: units}, nil
}

//MustCreateDistance creates the distance value but panics instead of returned a error
func MustCreateDistance(value float64, units byte) Distance {
	v, err := CreateDistance(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the distance in the specified units.
//
//The method returns a error in case the unit is
//not supported.
func (v Distance) Value(units byte) (float64, error) {
	return distanceUnits.fromBase(v.value, units)
}

//Convert converts the value into the specified units.
func (v Distance) Convert(units byte) Distance {
	return Distance{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Distance) In(units byte) float64 {
	x, err := distanceUnits.fromBase(v.value, units)
	if err != nil {
		return 0
	}
	return x
}

func (v Distance) String() string {
	x, err := distanceUnits.fromBase(v.value, v.defaultUnits)
	if err != nil {
		return "!error: default units aren't correct"
	}
	switch v.defaultUnits {
	case DistanceInch:
		return format(x, 1, "\"")
	case DistanceFoot:
		return format(x, 2, "'")
	case DistanceYard:
		return format(x, 3, "yd")
	case DistanceMile:
		return format(x, 3, "mi")
	case DistanceNauticalMile:
		return format(x, 3, "nm")
	case DistanceLine:
		return format(x, 1, "ln")
	case DistanceMillimeter:
		return format(x, 0, "mm")
	case DistanceCentimeter:
		return format(x, 1, "cm")
	case DistanceMeter:
		return format(x, 2, "m")
	case DistanceKilometer:
		return format(x, 3, "km")
	}
	return format(x, 6, "?")
}

//Units return the units in which the value is measured
func (v Distance) Units() byte {
	return v.defaultUnits
}
