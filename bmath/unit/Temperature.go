package unit

import "fmt"

//TemperatureFahrenheit is the value indicating that the temperature value is set in degrees of Fahrenheit
const TemperatureFahrenheit byte = 50

//TemperatureCelsius is the value indicating that the temperature value is set in degrees of Celsius
const TemperatureCelsius byte = 51

//TemperatureKelvin is the value indicating that the temperature value is set in kelvins
const TemperatureKelvin byte = 52

//TemperatureRankin is the value indicating that the temperature value is set in degrees of Rankin
const TemperatureRankin byte = 53

func temperatureToKelvin(value float64, units byte) (float64, error) {
	switch units {
	case TemperatureFahrenheit:
		return (value + 459.67) * 5 / 9, nil
	case TemperatureCelsius:
		return value + 273.15, nil
	case TemperatureKelvin:
		return value, nil
	case TemperatureRankin:
		return value * 5 / 9, nil
	}
	return 0, fmt.Errorf("Temperature: unit %d is not supported", units)
}

func temperatureFromKelvin(value float64, units byte) (float64, error) {
	switch units {
	case TemperatureFahrenheit:
		return value*9/5 - 459.67, nil
	case TemperatureCelsius:
		return value - 273.15, nil
	case TemperatureKelvin:
		return value, nil
	case TemperatureRankin:
		return value * 9 / 5, nil
	}
	return 0, fmt.Errorf("Temperature: unit %d is not supported", units)
}

//Temperature keeps the temperature value
type Temperature struct {
	value        float64
	defaultUnits byte
}

//CreateTemperature creates a temperature value.
//
//units are measurement unit and may be any value from
//unit.Temperature* constants.
func CreateTemperature(value float64, units byte) (Temperature, error) {
	if err := checkFinite("Temperature", value); err != nil {
		return Temperature{}, err
	}
	v, err := temperatureToKelvin(value, units)
	if err != nil {
		return Temperature{}, err
	}
	return Temperature{value: v, defaultUnits: units}, nil
}

//MustCreateTemperature creates the temperature value but panics instead of returned a error
func MustCreateTemperature(value float64, units byte) Temperature {
	v, err := CreateTemperature(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the temperature in the specified units
func (v Temperature) Value(units byte) (float64, error) {
	return temperatureFromKelvin(v.value, units)
}

//Convert converts the value into the specified units.
func (v Temperature) Convert(units byte) Temperature {
	return Temperature{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Temperature) In(units byte) float64 {
	x, err := temperatureFromKelvin(v.value, units)
	if err != nil {
		return 0
	}
	return x
}

func (v Temperature) String() string {
	x, err := temperatureFromKelvin(v.value, v.defaultUnits)
	if err != nil {
		return "!error: default units aren't correct"
	}
	switch v.defaultUnits {
	case TemperatureFahrenheit:
		return format(x, 1, "°F")
	case TemperatureCelsius:
		return format(x, 1, "°C")
	case TemperatureKelvin:
		return format(x, 1, "°K")
	case TemperatureRankin:
		return format(x, 1, "°R")
	}
	return format(x, 6, "?")
}

//Units return the units in which the value is measured
func (v Temperature) Units() byte {
	return v.defaultUnits
}
