package go_ballisticsolver

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

const cStandardTemperatureK float64 = 288.15
const cStandardPressurePa float64 = 101325
const cStandardHumidity float64 = 0.0
const cTemperatureGradient float64 = -0.0065 // K/m
const cPressureExponent float64 = 5.255876
const cAdiabaticIndex float64 = 1.4
const cDryAirConstant float64 = 287.058     // J/(kg·K)
const cWaterVaporConstant float64 = 461.495 // J/(kg·K)

//Atmosphere describes the atmosphere conditions
type Atmosphere struct {
	altitude     unit.Distance
	pressure     unit.Pressure
	temperature  unit.Temperature
	humidity     float64
	density      float64
	speedOfSound float64
}

//CreateDefaultAtmosphere creates the standard sea level atmosphere (15°C, 1013.25 hPa, dry air)
func CreateDefaultAtmosphere() Atmosphere {
	a := Atmosphere{
		altitude:    unit.MustCreateDistance(0, unit.DistanceMeter),
		pressure:    unit.MustCreatePressure(cStandardPressurePa/100, unit.PressureHP),
		temperature: unit.MustCreateTemperature(cStandardTemperatureK, unit.TemperatureKelvin).Convert(unit.TemperatureCelsius),
		humidity:    cStandardHumidity,
	}
	a.calculate()
	return a
}

//CreateAtmosphere creates the atmosphere with the specified parameter
//
//humidity is accepted either as a 0..1 coefficient or in percents (0..100).
func CreateAtmosphere(pressure unit.Pressure, temperature unit.Temperature, humidity float64) (Atmosphere, error) {
	if err := checkRange("Atmosphere humidity", humidity, 0, 100); err != nil {
		return Atmosphere{}, err
	}
	if humidity > 1 {
		humidity = humidity / 100
	}
	if err := checkRange("Atmosphere temperature (K)", temperature.In(unit.TemperatureKelvin), 1, 1000); err != nil {
		return Atmosphere{}, err
	}
	if err := checkRange("Atmosphere pressure (Pa)", pressure.In(unit.PressurePascal), 1, 1e7); err != nil {
		return Atmosphere{}, err
	}

	a := Atmosphere{
		altitude:    unit.MustCreateDistance(0, unit.DistanceMeter),
		pressure:    pressure,
		temperature: temperature,
		humidity:    humidity,
	}
	if vapor := a.vaporPressure(); vapor >= a.pressure.In(unit.PressurePascal) {
		return Atmosphere{}, fmt.Errorf("Atmosphere: %w: vapor pressure %.0fPa exceeds pressure %s",
			ErrOutOfRange, vapor, pressure)
	}
	a.calculate()
	return a, nil
}

//CreateICAOAtmosphere creates default ICAO atmosphere for the specified altitude
func CreateICAOAtmosphere(altitude unit.Distance) (Atmosphere, error) {
	h := altitude.In(unit.DistanceMeter)
	if err := checkRange("ICAO altitude (m)", h, -1000, 11000); err != nil {
		return Atmosphere{}, err
	}
	t := cStandardTemperatureK + h*cTemperatureGradient
	p := cStandardPressurePa * math.Pow(t/cStandardTemperatureK, cPressureExponent)

	a := Atmosphere{
		altitude:    altitude,
		temperature: unit.MustCreateTemperature(t, unit.TemperatureKelvin).Convert(unit.TemperatureCelsius),
		pressure:    unit.MustCreatePressure(p/100, unit.PressureHP),
		humidity:    cStandardHumidity,
	}
	a.calculate()
	return a, nil
}

//Altitude returns the altitude the atmosphere was created for
func (a Atmosphere) Altitude() unit.Distance {
	return a.altitude
}

//Temperature returns the temperature at the ground level
func (a Atmosphere) Temperature() unit.Temperature {
	return a.temperature
}

//Pressure returns the pressure at the ground level
func (a Atmosphere) Pressure() unit.Pressure {
	return a.pressure
}

//Humidity returns the relative humidity set in 0 to 1 coefficient
//
//multiply this value by 100 to get percents
func (a Atmosphere) Humidity() float64 {
	return a.humidity
}

//HumidityInPercents returns relative humidity in percents (0..100)
func (a Atmosphere) HumidityInPercents() float64 {
	return a.humidity * 100
}

//Density returns the air density in kg/m³
func (a Atmosphere) Density() float64 {
	return a.density
}

//SpeedOfSound returns the speed of sound at the atmosphere with such parameters
func (a Atmosphere) SpeedOfSound() unit.Velocity {
	return unit.MustCreateVelocity(a.speedOfSound, unit.VelocityMPS)
}

func (a Atmosphere) String() string {
	return fmt.Sprintf("Altitude:%s,Pressure:%s,Temperature:%s,Humidity:%.2f%%",
		a.altitude, a.pressure, a.temperature, a.humidity*100)
}

//vaporPressure returns the partial pressure of water vapor in Pa (Arden Buck equation)
func (a Atmosphere) vaporPressure() float64 {
	t := a.temperature.In(unit.TemperatureCelsius)
	saturation := 611.21 * math.Exp((18.678-t/234.5)*(t/(257.14+t)))
	return a.humidity * saturation
}

func (a *Atmosphere) calculate() {
	t := a.temperature.In(unit.TemperatureKelvin)
	p := a.pressure.In(unit.PressurePascal)
	vapor := a.vaporPressure()
	dry := p - vapor

	a.density = dry/(cDryAirConstant*t) + vapor/(cWaterVaporConstant*t)
	a.speedOfSound = math.Sqrt(cAdiabaticIndex * p / a.density)
}
