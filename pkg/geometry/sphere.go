package geometry

import (
	"math"

	"github.com/user/spacer/pkg/core"
	"github.com/user/spacer/pkg/material"
)

// Sphere represents a sphere primitive with its surface material.
// Radius must be positive.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit tests if a ray intersects the sphere inside tRange
func (s *Sphere) Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	oc := s.Center.Subtract(ray.Origin)

	// Quadratic in the reduced half-b form: h = d·(c-o)
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Prefer the nearer root, fall back to the farther one
	sqrtD := math.Sqrt(discriminant)
	root := (h - sqrtD) / a
	if !tRange.Surrounds(root) {
		root = (h + sqrtD) / a
		if !tRange.Surrounds(root) {
			return nil, false
		}
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Division by the radius already yields a unit normal; one Newton step
	// corrects the floating-point drift without a full normalize
	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius).FastRenormalize()
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return core.NewAABBFromCenter(s.Center, core.Splat(s.Radius))
}
