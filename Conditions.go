package go_ballisticsolver

import (
	"time"
)

//Conditions keeps everything outside of the weapon and the ammunition that affects the shot
//
//A full solve usually uses two instances: one the weapon was zeroed under
//and one the shot is fired under.
type Conditions struct {
	atmosphere Atmosphere
	wind       Wind
	shooter    Shooter
	timeStep   time.Duration
}

//CreateDefaultConditions creates the standard atmosphere, no wind, level shot and 1ms integration step
func CreateDefaultConditions() Conditions {
	return Conditions{
		atmosphere: CreateDefaultAtmosphere(),
		wind:       CreateNoWind(),
		shooter:    CreateLevelShooter(),
		timeStep:   time.Millisecond,
	}
}

//CreateConditions creates the conditions of the shot
//
//timeStep - is the integration step, must be positive and not greater than one second
func CreateConditions(atmosphere Atmosphere, wind Wind, shooter Shooter, timeStep time.Duration) (Conditions, error) {
	if err := checkRange("Time step (s)", timeStep.Seconds(), 1e-9, 1); err != nil {
		return Conditions{}, err
	}
	return Conditions{
		atmosphere: atmosphere,
		wind:       wind,
		shooter:    shooter,
		timeStep:   timeStep,
	}, nil
}

//Atmosphere returns the atmosphere
func (v Conditions) Atmosphere() Atmosphere {
	return v.atmosphere
}

//Wind returns the wind
func (v Conditions) Wind() Wind {
	return v.wind
}

//Shooter returns the orientation of the shot
func (v Conditions) Shooter() Shooter {
	return v.shooter
}

//TimeStep returns the integration step
func (v Conditions) TimeStep() time.Duration {
	return v.timeStep
}
