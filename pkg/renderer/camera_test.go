package renderer

import (
	"math"
	"testing"

	"github.com/user/spacer/pkg/core"
	"github.com/user/spacer/pkg/geometry"
	"github.com/user/spacer/pkg/material"
)

// centerSampler always draws 0.5 so SampleRay hits exact pixel centers
type centerSampler struct{}

func (centerSampler) Get1D() float64 {
	return 0.5
}

func (centerSampler) Get2D() core.Vec2 {
	return core.NewVec2(0.5, 0.5)
}

func TestViewport_Derivation(t *testing.T) {
	params := DefaultCameraParams()
	params.ImageWidth = 4
	params.ImageHeight = 2
	params.FOV = math.Pi / 2
	params.FocusDist = 1.0

	v := newViewport(params)

	// FOV of 90 degrees at focus 1 gives a viewport 2 high and 4 wide
	if v.PixelDeltaU.Subtract(core.NewVec3(1, 0, 0)).Length() > 1e-12 {
		t.Errorf("Unexpected PixelDeltaU %v", v.PixelDeltaU)
	}
	if v.PixelDeltaV.Subtract(core.NewVec3(0, -1, 0)).Length() > 1e-12 {
		t.Errorf("Unexpected PixelDeltaV %v", v.PixelDeltaV)
	}
	if v.Pixel00Center.Subtract(core.NewVec3(-1.5, 0.5, -1)).Length() > 1e-12 {
		t.Errorf("Unexpected Pixel00Center %v", v.Pixel00Center)
	}

	// Pinhole camera has a degenerate aperture disk
	if v.DefocusDiskU.Length() != 0 || v.DefocusDiskV.Length() != 0 {
		t.Error("Expected zero defocus basis for a pinhole camera")
	}
}

func TestViewport_PixelCenter(t *testing.T) {
	params := DefaultCameraParams()
	params.ImageWidth = 4
	params.ImageHeight = 2
	params.FOV = math.Pi / 2

	v := newViewport(params)
	got := v.PixelCenter(3, 1)
	expected := core.NewVec3(-1.5+3, 0.5-1, -1)
	if got.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestCamera_CenterRayHitsSphere(t *testing.T) {
	params := DefaultCameraParams()
	params.ImageWidth = 1
	params.ImageHeight = 1
	params.FOV = math.Pi / 2

	camera := NewCamera(params)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	ray := camera.SampleRay(camera.RotatedViewport(), 0, 0, centerSampler{})
	if ray.Origin != (core.Vec3{}) {
		t.Errorf("Pinhole ray should start at the camera, got %v", ray.Origin)
	}
	if ray.Direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-12 {
		t.Errorf("Expected direction (0,0,-1), got %v", ray.Direction)
	}

	hit, ok := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		t.Fatal("Center ray should hit the sphere")
	}
	if !hit.FrontFace {
		t.Error("Expected a front-face hit")
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
}

func TestCamera_TranslationMovesOrigin(t *testing.T) {
	params := DefaultCameraParams()
	camera := NewCamera(params)
	camera.Transform = core.NewTransformFromTranslation(core.NewVec3(1, 2, 3))

	ray := camera.SampleRay(camera.RotatedViewport(), 0, 0, centerSampler{})
	if ray.Origin != core.NewVec3(1, 2, 3) {
		t.Errorf("Expected origin (1,2,3), got %v", ray.Origin)
	}
}

func TestCamera_RotatedViewport(t *testing.T) {
	params := DefaultCameraParams()
	params.FOV = math.Pi / 2
	camera := NewCamera(params)

	// Look along +X instead of the default -Z
	camera.Transform = core.LookAt(core.Vec3{}, core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))

	ray := camera.SampleRay(camera.RotatedViewport(), 0, 0, centerSampler{})
	dir := ray.Direction.Normalize()
	if dir.Subtract(core.NewVec3(1, 0, 0)).Length() > 1e-12 {
		t.Errorf("Expected center ray along +X, got %v", dir)
	}
}

func TestCamera_DefocusJitterStaysOnFocusPlane(t *testing.T) {
	params := DefaultCameraParams()
	params.FOV = math.Pi / 2
	params.DefocusAngle = 10 * math.Pi / 180
	params.FocusDist = 3.0

	camera := NewCamera(params)
	viewport := camera.RotatedViewport()
	sampler := core.NewSeededSampler(42)

	center := viewport.PixelCenter(0, 0)
	halfU := viewport.PixelDeltaU.Length() / 2
	halfV := viewport.PixelDeltaV.Length() / 2

	jittered := false
	for i := 0; i < 100; i++ {
		ray := camera.SampleRay(viewport, 0, 0, sampler)
		if ray.Origin.Length() > 1e-12 {
			jittered = true
		}
		// Whatever point on the aperture the ray starts from, at the focus
		// plane it must land inside its pixel's square
		tPlane := (-params.FocusDist - ray.Origin.Z) / ray.Direction.Z
		at := ray.At(tPlane)
		if math.Abs(at.Z+params.FocusDist) > 1e-9 {
			t.Fatalf("Ray does not reach the focus plane: %v", at)
		}
		if math.Abs(at.X-center.X) > halfU+1e-9 || math.Abs(at.Y-center.Y) > halfV+1e-9 {
			t.Fatalf("Focus plane point %v escapes the pixel around %v", at, center)
		}
	}
	if !jittered {
		t.Error("Expected aperture jitter to move the ray origin")
	}
}
