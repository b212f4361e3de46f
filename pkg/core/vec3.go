package core

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec3 represents a 3D vector or an RGB color with float32 components.
// Vec3 is immutable: every method returns a new value.
type Vec3 struct {
	x, y, z float32
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x: x, y: y, z: z}
}

// Splat creates a Vec3 with all three components set to s
func Splat(s float32) Vec3 {
	return Vec3{s, s, s}
}

func (v Vec3) X() float32 { return v.x }
func (v Vec3) Y() float32 { return v.y }
func (v Vec3) Z() float32 { return v.z }

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.x + other.x, v.y + other.y, v.z + other.z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.x - other.x, v.y - other.y, v.z - other.z}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.x * other.x, v.y * other.y, v.z * other.z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float32) Vec3 {
	return v.MultiplyVec(Splat(scalar))
}

// DivideVec returns component-wise division of two vectors.
// Zero components yield Inf or NaN.
func (v Vec3) DivideVec(other Vec3) Vec3 {
	return Vec3{v.x / other.x, v.y / other.y, v.z / other.z}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float32) Vec3 {
	return v.DivideVec(Splat(scalar))
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float32 {
	return v.x*other.x + v.y*other.y + v.z*other.z
}

// Cross returns the right-handed cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		x: v.y*other.z - v.z*other.y,
		y: v.z*other.x - v.x*other.z,
		z: v.x*other.y - v.y*other.x,
	}
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to NaN components.
func (v Vec3) Normalize() Vec3 {
	return v.Divide(v.Length())
}

// Lerp blends v towards other: v*(1-t) + other*t. t is not clamped.
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return Vec3{
		x: Lerp(v.x, other.x, t),
		y: Lerp(v.y, other.y, t),
		z: Lerp(v.z, other.z, t),
	}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.x, -v.y, -v.z}
}

// ApproxEqual reports whether every component of v is within eps of other
func (v Vec3) ApproxEqual(other Vec3, eps float32) bool {
	return math32.Abs(v.x-other.x) <= eps &&
		math32.Abs(v.y-other.y) <= eps &&
		math32.Abs(v.z-other.z) <= eps
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.x, v.y, v.z)
}
