package material

import "github.com/user/spacer/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always facing the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray struck the outward-normal side
	Material  Material  // Material of the hit object
}

// SetFaceNormal orients the stored normal against the incoming ray and
// records which face was hit. outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
