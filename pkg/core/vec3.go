package core

import "math"

// Vec3 represents a 3D vector, also used for RGB colors
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat creates a Vec3 with the same value in all components
func Splat(v float64) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// The vector must have a non-zero finite length; a zero vector is
// returned unchanged so callers can detect degenerate input upstream.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// FastRenormalize applies one Newton iteration to pull an almost-unit
// vector back onto the unit sphere without a sqrt: v * (1.5 - 0.5*|v|²)
func (v Vec3) FastRenormalize() Vec3 {
	return v.Multiply(0.5 * (3.0 - v.LengthSquared()))
}

// NearZero reports whether all components are close to zero
func (v Vec3) NearZero() bool {
	const epsilon = 1e-8
	return math.Abs(v.X) < epsilon && math.Abs(v.Y) < epsilon && math.Abs(v.Z) < epsilon
}

// Reflect returns the reflection of the vector about a unit normal
func (v Vec3) Reflect(normal Vec3) Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// Refract returns the refraction of a unit vector through a surface with
// unit normal using Snell's law in vector form. The second return value is
// false when total internal reflection occurs and no refracted direction exists.
func (v Vec3) Refract(normal Vec3, eta float64) (Vec3, bool) {
	nDotI := v.Dot(normal)
	k := 1.0 - eta*eta*(1.0-nDotI*nDotI)
	if k < 0 {
		return Vec3{}, false
	}
	return v.Multiply(eta).Subtract(normal.Multiply(eta*nDotI + math.Sqrt(k))), true
}

// Lerp linearly interpolates between v and other by t in [0,1]
func (v Vec3) Lerp(other Vec3, t float64) Vec3 {
	return v.Multiply(1.0 - t).Add(other.Multiply(t))
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}
