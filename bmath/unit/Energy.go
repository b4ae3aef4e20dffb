package unit

//EnergyFootPound is the value indicating that the energy value is set in foot-pounds
const EnergyFootPound byte = 30

//EnergyJoule is the value indicating that the energy value is set in joules
const EnergyJoule byte = 31

var energyUnits = linearUnits{
	quantity: "Energy",
	factors: map[byte]float64{
		EnergyFootPound: 1.3558179483314004,
		EnergyJoule:     1,
	},
}

//Energy keeps the energy value
type Energy struct {
	value        float64
	defaultUnits byte
}

//CreateEnergy creates an energy value.
//
//units are measurement unit and may be any value from
//unit.Energy* constants.
func CreateEnergy(value float64, units byte) (Energy, error) {
	if err := checkFinite("Energy", value); err != nil {
		return Energy{}, err
	}
	v, err := energyUnits.toBase(value, units)
	if err != nil {
		return Energy{}, err
	}
	return Energy{value: v, defaultUnits: units}, nil
}

//MustCreateEnergy creates the energy value but panics instead of returned a error
func MustCreateEnergy(value float64, units byte) Energy {
	v, err := CreateEnergy(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the energy in the specified units
func (v Energy) Value(units byte) (float64, error) {
	return energyUnits.fromBase(v.value, units)
}

//Convert converts the value into the specified units.
func (v Energy) Convert(units byte) Energy {
	return Energy{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Energy) In(units byte) float64 {
	x, err := energyUnits.fromBase(v.value, units)
	if err != nil {
		return 0
	}
	return x
}

func (v Energy) String() string {
	x, err := energyUnits.fromBase(v.value, v.defaultUnits)
	if err != nil {
		return "!error: default units aren't correct"
	}
	switch v.defaultUnits {
	case EnergyFootPound:
		return format(x, 0, "ft·lb")
	case EnergyJoule:
		return format(x, 0, "J")
	}
	return format(x, 6, "?")
}

//Units return the units in which the value is measured
func (v Energy) Units() byte {
	return v.defaultUnits
}
