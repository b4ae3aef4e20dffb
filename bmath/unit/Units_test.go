package unit_test

import (
	"math"
	"testing"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)


func angularBackAndForth(value float64, units byte) (float64, float64, error) {
	u, err := unit.CreateAngular(value, units)
	if err != nil {
		return 0, 0, err
	}
	v, err := u.Value(units)
	return v, u.In(units), err
}

func distanceBackAndForth(value float64, units byte) (float64, float64, error) {
	u, err := unit.CreateDistance(value, units)
	if err != nil {
		return 0, 0, err
	}
	v, err := u.Value(units)
	return v, u.In(units), err
}

func energyBackAndForth(value float64, units byte) (float64, float64, error) {
	u, err := unit.CreateEnergy(value, units)
	if err != nil {
		return 0, 0, err
	}
	v, err := u.Value(units)
	return v, u.In(units), err
}

func pressureBackAndForth(value float64, units byte) (float64, float64, error) {
	u, err := unit.CreatePressure(value, units)
	if err != nil {
		return 0, 0, err
	}
	v, err := u.Value(units)
	return v, u.In(units), err
}

func temperatureBackAndForth(value float64, units byte) (float64, float64, error) {
	u, err := unit.CreateTemperature(value, units)
	if err != nil {
		return 0, 0, err
	}
	v, err := u.Value(units)
	return v, u.In(units), err
}

func velocityBackAndForth(value float64, units byte) (float64, float64, error) {
	u, err := unit.CreateVelocity(value, units)
	if err != nil {
		return 0, 0, err
	}
	v, err := u.Value(units)
	return v, u.In(units), err
}

func weightBackAndForth(value float64, units byte) (float64, float64, error) {
	u, err := unit.CreateWeight(value, units)
	if err != nil {
		return 0, 0, err
	}
	v, err := u.Value(units)
	return v, u.In(units), err
}

func checkBackAndForth(t *testing.T, f func(float64, byte) (float64, float64, error), value float64, units ...byte) {
	t.Helper()
	for _, u := range units {
		v, in, err := f(value, u)
		if err != nil {
			t.Errorf("Creation failed for %d: %v", u, err)
			continue
		}
		if math.Abs(v-value) > 1e-7 || math.Abs(v-in) > 1e-7 {
			t.Errorf("Read back failed for %d: %f/%f", u, v, value)
		}
	}
}

func TestAngular(t *testing.T) {
	checkBackAndForth(t, angularBackAndForth, 3,
		unit.AngularRadian, unit.AngularDegree, unit.AngularMOA, unit.AngularMil,
		unit.AngularMRad, unit.AngularThousand, unit.AngularInchesPer100Yd, unit.AngularCmPer100M)

	a := unit.MustCreateAngular(1, unit.AngularDegree)
	if math.Abs(a.In(unit.AngularMOA)-60) > 1e-9 {
		t.Errorf("1 degree is %f MOA", a.In(unit.AngularMOA))
	}
	if math.Abs(unit.MustCreateAngular(1, unit.AngularMOA).In(unit.AngularInchesPer100Yd)-1.047) > 1e-3 {
		t.Error("1 MOA must be about 1.047 inches per 100 yards")
	}
}

func TestDistance(t *testing.T) {
	checkBackAndForth(t, distanceBackAndForth, 3,
		unit.DistanceInch, unit.DistanceFoot, unit.DistanceYard, unit.DistanceMile,
		unit.DistanceNauticalMile, unit.DistanceMillimeter, unit.DistanceCentimeter,
		unit.DistanceMeter, unit.DistanceKilometer, unit.DistanceLine)

	d := unit.MustCreateDistance(100, unit.DistanceYard)
	if math.Abs(d.In(unit.DistanceMeter)-91.44) > 1e-9 {
		t.Errorf("100 yards is %f meters", d.In(unit.DistanceMeter))
	}
	if d.String() != "100.000yd" {
		t.Errorf("unexpected string %q", d.String())
	}
	if d.Convert(unit.DistanceMeter).String() != "91.44m" {
		t.Errorf("unexpected string %q", d.Convert(unit.DistanceMeter).String())
	}
}

func TestEnergy(t *testing.T) {
	checkBackAndForth(t, energyBackAndForth, 3, unit.EnergyFootPound, unit.EnergyJoule)
}

func TestPressure(t *testing.T) {
	checkBackAndForth(t, pressureBackAndForth, 3,
		unit.PressureMmHg, unit.PressureInHg, unit.PressureBar, unit.PressureHP,
		unit.PressurePSI, unit.PressurePascal)

	p := unit.MustCreatePressure(29.92, unit.PressureInHg)
	if math.Abs(p.In(unit.PressureHP)-1013.2) > 0.1 {
		t.Errorf("29.92 inHg is %f hPa", p.In(unit.PressureHP))
	}
}

func TestTemperature(t *testing.T) {
	checkBackAndForth(t, temperatureBackAndForth, 3,
		unit.TemperatureFahrenheit, unit.TemperatureCelsius, unit.TemperatureKelvin, unit.TemperatureRankin)

	c := unit.MustCreateTemperature(59, unit.TemperatureFahrenheit)
	if math.Abs(c.In(unit.TemperatureCelsius)-15) > 1e-9 {
		t.Errorf("59F is %f C", c.In(unit.TemperatureCelsius))
	}
}

func TestVelocity(t *testing.T) {
	checkBackAndForth(t, velocityBackAndForth, 3,
		unit.VelocityMPS, unit.VelocityKMH, unit.VelocityFPS, unit.VelocityMPH, unit.VelocityKT)
}

func TestWeight(t *testing.T) {
	checkBackAndForth(t, weightBackAndForth, 3,
		unit.WeightGrain, unit.WeightOunce, unit.WeightGram, unit.WeightPound,
		unit.WeightKilogram, unit.WeightNewton)

	w := unit.MustCreateWeight(7000, unit.WeightGrain)
	if math.Abs(w.In(unit.WeightPound)-1) > 1e-9 {
		t.Errorf("7000gr is %f lb", w.In(unit.WeightPound))
	}
}

func TestAcceleration(t *testing.T) {
	g := unit.MustCreateAcceleration(32.17405, unit.AccelerationFPS2)
	if math.Abs(g.In(unit.AccelerationMPS2)-9.80665) > 1e-5 {
		t.Errorf("standard gravity is %f m/s2", g.In(unit.AccelerationMPS2))
	}
}

func TestUnsupportedUnits(t *testing.T) {
	if _, err := unit.CreateDistance(1, unit.VelocityFPS); err == nil {
		t.Error("Distance must reject velocity units")
	}
	if _, err := unit.CreateAngular(1, 200); err == nil {
		t.Error("Angular must reject unknown units")
	}
	if _, err := unit.CreateVelocity(math.NaN(), unit.VelocityMPS); err == nil {
		t.Error("Velocity must reject NaN")
	}
	if v := unit.MustCreateDistance(1, unit.DistanceMeter).In(unit.WeightGram); v != 0 {
		t.Errorf("unsupported In() must return 0, got %f", v)
	}
}
