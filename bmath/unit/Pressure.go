package unit

//PressureMmHg is the value indicating that the pressure value is set in millimeters of mercury
const PressureMmHg byte = 40

//PressureInHg is the value indicating that the pressure value is set in inches of mercury
const PressureInHg byte = 41

//PressureBar is the value indicating that the pressure value is set in bars
const PressureBar byte = 42

//PressureHP is the value indicating that the pressure value is set in hectopascals
const PressureHP byte = 43

//PressurePSI is the value indicating that the pressure value is set in pounds per square inch
const PressurePSI byte = 44

//PressurePascal is the value indicating that the pressure value is set in pascals
const PressurePascal byte = 45

var pressureUnits = linearUnits{
	quantity: "Pressure",
	factors: map[byte]float64{
		PressureMmHg:   133.322387415,
		PressureInHg:   3386.389,
		PressureBar:    100000,
		PressureHP:     100,
		PressurePSI:    6894.757293168,
		PressurePascal: 1,
	},
}

//Pressure keeps the atmospheric pressure value
type Pressure struct {
	value        float64
	defaultUnits byte
}

//CreatePressure creates a pressure value.
//
//units are measurement unit and may be any value from
//unit.Pressure* constants.
func CreatePressure(value float64, units byte) (Pressure, error) {
	if err := checkFinite("Pressure", value); err != nil {
		return Pressure{}, err
	}
	v, err := pressureUnits.toBase(value, units)
	if err != nil {
		return Pressure{}, err
	}
	return Pressure{value: v, defaultUnits: units}, nil
}

//MustCreatePressure creates the pressure value but panics instead of returned a error
func MustCreatePressure(value float64, units byte) Pressure {
	v, err := CreatePressure(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the pressure in the specified units
func (v Pressure) Value(units byte) (float64, error) {
	return pressureUnits.fromBase(v.value, units)
}

//Convert converts the value into the specified units.
func (v Pressure) Convert(units byte) Pressure {
	return Pressure{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Pressure) In(units byte) float64 {
	x, err := pressureUnits.fromBase(v.value, units)
	if err != nil {
		return 0
	}
	return x
}

func (v Pressure) String() string {
	x, err := pressureUnits.fromBase(v.value, v.defaultUnits)
	if err != nil {
		return "!error: default units aren't correct"
	}
	switch v.defaultUnits {
	case PressureMmHg:
		return format(x, 0, "mmHg")
	case PressureInHg:
		return format(x, 2, "inHg")
	case PressureBar:
		return format(x, 2, "bar")
	case PressureHP:
		return format(x, 4, "hPa")
	case PressurePSI:
		return format(x, 4, "psi")
	case PressurePascal:
		return format(x, 0, "Pa")
	}
	return format(x, 6, "?")
}

//Units return the units in which the value is measured
func (v Pressure) Units() byte {
	return v.defaultUnits
}
