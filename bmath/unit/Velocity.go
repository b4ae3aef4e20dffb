package unit

//VelocityMPS is the value indicating that the velocity value is set in meters per second
const VelocityMPS byte = 60

//VelocityKMH is the value indicating that the velocity value is set in kilometers per hour
const VelocityKMH byte = 61

//VelocityFPS is the value indicating that the velocity value is set in feet per second
const VelocityFPS byte = 62

//VelocityMPH is the value indicating that the velocity value is set in miles per hour
const VelocityMPH byte = 63

//VelocityKT is the value indicating that the velocity value is set in knots
const VelocityKT byte = 64

var velocityUnits = linearUnits{
	quantity: "Velocity",
	factors: map[byte]float64{
		VelocityMPS: 1,
		VelocityKMH: 1000.0 / 3600.0,
		VelocityFPS: 0.3048,
		VelocityMPH: 0.44704,
		VelocityKT:  1852.0 / 3600.0,
	},
}

//Velocity keeps the velocity value
type Velocity struct {
	value        float64
	defaultUnits byte
}

//CreateVelocity creates a velocity value.
//
//units are measurement unit and may be any value from
//unit.Velocity* constants.
func CreateVelocity(value float64, units byte) (Velocity, error) {
	if err := checkFinite("Velocity", value); err != nil {
		return Velocity{}, err
	}
	v, err := velocityUnits.toBase(value, units)
	if err != nil {
		return Velocity{}, err
	}
	return Velocity{value: v, defaultUnits: units}, nil
}

//MustCreateVelocity creates the velocity value but panics instead of returned a error
func MustCreateVelocity(value float64, units byte) Velocity {
	v, err := CreateVelocity(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the velocity in the specified units
func (v Velocity) Value(units byte) (float64, error) {
	return velocityUnits.fromBase(v.value, units)
}

//Convert converts the value into the specified units.
func (v Velocity) Convert(units byte) Velocity {
	return Velocity{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Velocity) In(units byte) float64 {
	x, err := velocityUnits.fromBase(v.value, units)
	if err != nil {
		return 0
	}
	return x
}

func (v Velocity) String() string {
	x, err := velocityUnits.fromBase(v.value, v.defaultUnits)
	if err != nil {
		return "!error: default units aren't correct"
	}
	switch v.defaultUnits {
	case VelocityMPS:
		return format(x, 0, "m/s")
	case VelocityKMH:
		return format(x, 1, "km/h")
	case VelocityFPS:
		return format(x, 1, "ft/s")
	case VelocityMPH:
		return format(x, 1, "mph")
	case VelocityKT:
		return format(x, 1, "kt")
	}
	return format(x, 6, "?")
}

//Units return the units in which the value is measured
func (v Velocity) Units() byte {
	return v.defaultUnits
}
