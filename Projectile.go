package go_ballisticsolver

import (
	"math"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

//Projectile keeps description of a projectile
type Projectile struct {
	ballisticCoefficient BallisticCoefficient
	weight               unit.Weight
	bulletDiameter       unit.Distance
}

//CreateProjectile creates the description of a projectile.
//
//The diameter (caliber) is required to calculate the frontal area and the
//sectional density of the projectile.
func CreateProjectile(ballisticCoefficient BallisticCoefficient, bulletDiameter unit.Distance, weight unit.Weight) (Projectile, error) {
	if ballisticCoefficient.Table() == nil {
		return Projectile{}, &OutOfRangeError{Name: "Projectile ballistic coefficient", Min: math.SmallestNonzeroFloat64, Max: math.MaxFloat64}
	}
	if err := checkRange("Projectile diameter (m)", bulletDiameter.In(unit.DistanceMeter), 1e-5, 1); err != nil {
		return Projectile{}, err
	}
	if err := checkRange("Projectile weight (kg)", weight.In(unit.WeightKilogram), 1e-6, 1000); err != nil {
		return Projectile{}, err
	}
	return Projectile{
		ballisticCoefficient: ballisticCoefficient,
		weight:               weight,
		bulletDiameter:       bulletDiameter,
	}, nil
}

//BallisticCoefficient returns ballistic coefficient of the projectile
func (v Projectile) BallisticCoefficient() BallisticCoefficient {
	return v.ballisticCoefficient
}

//BulletWeight returns weight of the projectile
func (v Projectile) BulletWeight() unit.Weight {
	return v.weight
}

//BulletDiameter returns the diameter (caliber) of the projectile
func (v Projectile) BulletDiameter() unit.Distance {
	return v.bulletDiameter
}

//mass returns the mass in kg
func (v Projectile) mass() float64 {
	return v.weight.In(unit.WeightKilogram)
}

//area returns the frontal area in m²
func (v Projectile) area() float64 {
	r := v.bulletDiameter.In(unit.DistanceMeter) / 2
	return math.Pi * r * r
}

//FormFactor returns the ratio of the sectional density to the ballistic coefficient
func (v Projectile) FormFactor() float64 {
	return sectionalDensity(v.weight, v.bulletDiameter) / v.ballisticCoefficient.Value()
}

//Ammunition struct keeps the description of ammunition (e.g. projectile loaded into a case shell)
type Ammunition struct {
	projectile     Projectile
	muzzleVelocity unit.Velocity
}

//CreateAmmunition creates the description of the ammunition
func CreateAmmunition(bullet Projectile, muzzleVelocity unit.Velocity) (Ammunition, error) {
	if err := checkRange("Muzzle velocity (m/s)", muzzleVelocity.In(unit.VelocityMPS), 1, 10000); err != nil {
		return Ammunition{}, err
	}
	return Ammunition{
		projectile:     bullet,
		muzzleVelocity: muzzleVelocity,
	}, nil
}

//Bullet returns the description of the projectile
func (v Ammunition) Bullet() Projectile {
	return v.projectile
}

//MuzzleVelocity returns the velocity of the projectile at the muzzle
func (v Ammunition) MuzzleVelocity() unit.Velocity {
	return v.muzzleVelocity
}
