package unit

//WeightGrain is the value indicating that the weight value is set in grains
const WeightGrain byte = 70

//WeightOunce is the value indicating that the weight value is set in ounces
const WeightOunce byte = 71

//WeightGram is the value indicating that the weight value is set in grams
const WeightGram byte = 72

//WeightPound is the value indicating that the weight value is set in pounds
const WeightPound byte = 73

//WeightKilogram is the value indicating that the weight value is set in kilograms
const WeightKilogram byte = 74

//WeightNewton is the value indicating that the weight value is set in newtons (of standard gravity)
const WeightNewton byte = 75

var weightUnits = linearUnits{
	quantity: "Weight",
	factors: map[byte]float64{
		WeightGrain:    0.00006479891,
		WeightOunce:    0.028349523125,
		WeightGram:     0.001,
		WeightPound:    0.45359237,
		WeightKilogram: 1,
		WeightNewton:   1 / 9.80665,
	},
}

//Weight keeps the mass of an object
type Weight struct {
	value        float64
	defaultUnits byte
}

//CreateWeight creates a weight value.
//
//units are measurement unit and may be any value from
//unit.Weight* constants.
func CreateWeight(value float64, units byte) (Weight, error) {
	if err := checkFinite("Weight", value); err != nil {
		return Weight{}, err
	}
	v, err := weightUnits.toBase(value, units)
	if err != nil {
		return Weight{}, err
	}
	return Weight{value: v, defaultUnits: units}, nil
}

//MustCreateWeight creates the weight value but panics instead of returned a error
func MustCreateWeight(value float64, units byte) Weight {
	v, err := CreateWeight(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the weight in the specified units
func (v Weight) Value(units byte) (float64, error) {
	return weightUnits.fromBase(v.value, units)
}

//Convert converts the value into the specified units.
func (v Weight) Convert(units byte) Weight {
	return Weight{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Weight) In(units byte) float64 {
	x, err := weightUnits.fromBase(v.value, units)
	if err != nil {
		return 0
	}
	return x
}

func (v Weight) String() string {
	x, err := weightUnits.fromBase(v.value, v.defaultUnits)
	if err != nil {
		return "!error: default units aren't correct"
	}
	switch v.defaultUnits {
	case WeightGrain:
		return format(x, 0, "gr")
	case WeightOunce:
		return format(x, 1, "oz")
	case WeightGram:
		return format(x, 1, "g")
	case WeightPound:
		return format(x, 3, "lb")
	case WeightKilogram:
		return format(x, 3, "kg")
	case WeightNewton:
		return format(x, 3, "N")
	}
	return format(x, 6, "?")
}

//Units return the units in which the value is measured
func (v Weight) Units() byte {
	return v.defaultUnits
}
