package scene

import (
	"github.com/user/spacer/pkg/core"
	"github.com/user/spacer/pkg/geometry"
	"github.com/user/spacer/pkg/renderer"
)

// Scene accumulates primitives and camera/background configuration before a
// render. Once built, the returned hittable tree and the materials inside it
// are read-only and safe to share across render workers.
type Scene struct {
	CameraParams    renderer.CameraParams
	CameraTransform core.Transform
	TopColor        core.Vec3 // Sky color of the background gradient
	BottomColor     core.Vec3 // Ground color of the background gradient
	MaxBounces      int

	objects *geometry.List
}

// NewScene creates an empty scene with default camera parameters and the
// classic white-to-blue sky
func NewScene() *Scene {
	return &Scene{
		CameraParams:    renderer.DefaultCameraParams(),
		CameraTransform: core.IdentityTransform(),
		TopColor:        core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:     core.NewVec3(1.0, 1.0, 1.0),
		MaxBounces:      50,
		objects:         geometry.NewList(),
	}
}

// Add appends a primitive to the scene
func (s *Scene) Add(obj geometry.Hittable) {
	s.objects.Add(obj)
}

// Objects returns the flat primitive list, useful for brute-force
// intersection checks
func (s *Scene) Objects() *geometry.List {
	return s.objects
}

// Build compiles the accumulated primitives into a BVH
func (s *Scene) Build() geometry.Hittable {
	return geometry.NewBVH(s.objects.Objects())
}

// Camera creates the camera described by the scene configuration
func (s *Scene) Camera() *renderer.Camera {
	camera := renderer.NewCamera(s.CameraParams)
	camera.Transform = s.CameraTransform
	return camera
}
