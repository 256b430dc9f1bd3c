package core

// AABB represents an axis-aligned bounding box as three orthogonal intervals
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB contains no points
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates a new AABB from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromCorners creates an AABB spanning two opposite corner points
func NewAABBFromCorners(a, b Vec3) AABB {
	return AABB{
		X: OrderedInterval(a.X, b.X),
		Y: OrderedInterval(a.Y, b.Y),
		Z: OrderedInterval(a.Z, b.Z),
	}
}

// NewAABBFromCenter creates an AABB centered on a point with the given half size
func NewAABBFromCenter(center, halfSize Vec3) AABB {
	return AABB{
		X: NewInterval(center.X-halfSize.X, center.X+halfSize.X),
		Y: NewInterval(center.Y-halfSize.Y, center.Y+halfSize.Y),
		Z: NewInterval(center.Z-halfSize.Z, center.Z+halfSize.Z),
	}
}

// Enclose returns the minimal AABB containing both boxes
func (aabb AABB) Enclose(other AABB) AABB {
	return AABB{
		X: aabb.X.Enclose(other.X),
		Y: aabb.Y.Enclose(other.Y),
		Z: aabb.Z.Enclose(other.Z),
	}
}

// Axis returns the interval for the given axis (0=X, 1=Y, 2=Z)
func (aabb AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the greatest extent.
// Ties resolve away from X: equal extents prefer Z, then Y.
func (aabb AABB) LongestAxis() int {
	if aabb.X.Length() > aabb.Y.Length() {
		if aabb.X.Length() > aabb.Z.Length() {
			return 0
		}
		return 2
	}
	if aabb.Y.Length() > aabb.Z.Length() {
		return 1
	}
	return 2
}

// Hit tests whether a ray passes through the box anywhere within rayT
// using the slab method: the candidate parametric interval is intersected
// per axis and the box is rejected as soon as it becomes empty.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	axes := [3]struct {
		slab        Interval
		origin, dir float64
	}{
		{aabb.X, ray.Origin.X, ray.Direction.X},
		{aabb.Y, ray.Origin.Y, ray.Direction.Y},
		{aabb.Z, ray.Origin.Z, ray.Direction.Z},
	}

	intersection := rayT
	for _, axis := range axes {
		t0 := (axis.slab.Min - axis.origin) / axis.dir
		t1 := (axis.slab.Max - axis.origin) / axis.dir

		intersection = intersection.Intersect(OrderedInterval(t0, t1))
		if intersection.IsEmpty() {
			return false
		}
	}

	return true
}
