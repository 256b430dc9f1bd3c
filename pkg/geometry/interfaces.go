package geometry

import (
	"github.com/user/spacer/pkg/core"
	"github.com/user/spacer/pkg/material"
)

// Hittable is implemented by anything a ray can intersect: primitives,
// flat lists, and BVH nodes
type Hittable interface {
	// Hit returns the nearest intersection with parameter t inside tRange,
	// or false when the ray misses
	Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool)
	// BoundingBox returns a conservative box enclosing every point the
	// object can ever report in a hit record
	BoundingBox() core.AABB
}
