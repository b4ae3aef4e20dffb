package unit

//AccelerationMPS2 is the value indicating that the acceleration value is set in meters per second squared
const AccelerationMPS2 byte = 80

//AccelerationFPS2 is the value indicating that the acceleration value is set in feet per second squared
const AccelerationFPS2 byte = 81

var accelerationUnits = linearUnits{
	quantity: "Acceleration",
	factors: map[byte]float64{
		AccelerationMPS2: 1,
		AccelerationFPS2: 0.3048,
	},
}

//Acceleration keeps the acceleration value, e.g. local gravity
type Acceleration struct {
	value        float64
	defaultUnits byte
}

//CreateAcceleration creates an acceleration value.
func CreateAcceleration(value float64, units byte) (Acceleration, error) {
	if err := checkFinite("Acceleration", value); err != nil {
		return Acceleration{}, err
	}
	v, err := accelerationUnits.toBase(value, units)
	if err != nil {
		return Acceleration{}, err
	}
	return Acceleration{value: v, defaultUnits: units}, nil
}

//MustCreateAcceleration creates the acceleration value but panics instead of returned a error
func MustCreateAcceleration(value float64, units byte) Acceleration {
	v, err := CreateAcceleration(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Acceleration) In(units byte) float64 {
	x, err := accelerationUnits.fromBase(v.value, units)
	if err != nil {
		return 0
	}
	return x
}

func (v Acceleration) String() string {
	switch v.defaultUnits {
	case AccelerationMPS2:
		return format(v.In(v.defaultUnits), 5, "m/s²")
	case AccelerationFPS2:
		return format(v.In(v.defaultUnits), 4, "ft/s²")
	}
	return "!error: default units aren't correct"
}

//Units return the units in which the value is measured
func (v Acceleration) Units() byte {
	return v.defaultUnits
}
