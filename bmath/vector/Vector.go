//Package vector provides the 3D vector operations required for
//the point mass trajectory calculation.
//
//The solver uses a right-handed frame: X points downrange (north before the
//bearing is applied), Y points up and Z points to the right (east).
package vector

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

//Vector is a 3D vector
type Vector struct {
	X float64 //X-coordinate
	Y float64 //Y-coordinate
	Z float64 //Z-coordinate
}

func fromVec3(v mgl64.Vec3) Vector {
	return Vector{X: v[0], Y: v[1], Z: v[2]}
}

func (v Vector) vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

//Converts a vector into a string
func (v Vector) String() string {
	return fmt.Sprintf("[X=%f,Y=%f,Z=%f]", v.X, v.Y, v.Z)
}

//Create creates a vector from its coordinates
func Create(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

//Zero returns the (0,0,0) vector
func Zero() Vector {
	return Vector{}
}

//MultiplyByVector returns the dot product of two vectors
func (v Vector) MultiplyByVector(b Vector) float64 {
	return v.vec3().Dot(b.vec3())
}

//Cross returns the cross product v × b
func (v Vector) Cross(b Vector) Vector {
	return fromVec3(v.vec3().Cross(b.vec3()))
}

//Magnitude returns the length of the vector
func (v Vector) Magnitude() float64 {
	return v.vec3().Len()
}

//MultiplyByConst multiplies the vector by the constant
func (v Vector) MultiplyByConst(a float64) Vector {
	return fromVec3(v.vec3().Mul(a))
}

//Add adds two vectors
func (v Vector) Add(b Vector) Vector {
	return fromVec3(v.vec3().Add(b.vec3()))
}

//Subtract subtracts one vector from another
func (v Vector) Subtract(b Vector) Vector {
	return fromVec3(v.vec3().Sub(b.vec3()))
}

//Negate returns a vector which is symmetrical to this vector vs (0,0,0) point
func (v Vector) Negate() Vector {
	return v.MultiplyByConst(-1)
}

//Normalize returns a vector of magnitude one which is collinear to this vector.
//
//A vector shorter than 1e-10 is returned unchanged.
func (v Vector) Normalize() Vector {
	if v.Magnitude() < 1e-10 {
		return v
	}
	return fromVec3(v.vec3().Normalize())
}

//Angle returns the angle between two vectors in radians, in [0, π].
//
//The angle involving a zero-length vector is 0.
func (v Vector) Angle(b Vector) float64 {
	a, c := v.Normalize(), b.Normalize()
	if a.Magnitude() < 1e-10 || c.Magnitude() < 1e-10 {
		return 0
	}
	// asin of half the chord length is stable for both tiny and near-π angles
	if a.MultiplyByVector(c) < 0 {
		return math.Pi - 2*safeAsin(a.Add(c).Magnitude()/2)
	}
	return 2 * safeAsin(a.Subtract(c).Magnitude()/2)
}

func safeAsin(x float64) float64 {
	return math.Asin(math.Max(-1, math.Min(1, x)))
}

//PivotX rotates the vector counter-clockwise about the X axis (roll)
func (v Vector) PivotX(angle float64) Vector {
	return fromVec3(mgl64.Rotate3DX(angle).Mul3x1(v.vec3()))
}

//PivotY rotates the vector counter-clockwise about the Y axis (yaw)
func (v Vector) PivotY(angle float64) Vector {
	return fromVec3(mgl64.Rotate3DY(angle).Mul3x1(v.vec3()))
}

//PivotZ rotates the vector counter-clockwise about the Z axis (pitch)
func (v Vector) PivotZ(angle float64) Vector {
	return fromVec3(mgl64.Rotate3DZ(angle).Mul3x1(v.vec3()))
}
