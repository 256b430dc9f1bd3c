package renderer

import (
	"math"

	"github.com/user/spacer/pkg/core"
)

// CameraParams is the immutable per-render camera configuration
type CameraParams struct {
	ImageWidth  int     // Output width in pixels
	ImageHeight int     // Output height in pixels
	FOV         float64 // Vertical field of view in radians
	SamplesPerPixel int // Rays averaged per pixel
	FocusDist    float64 // Distance to the plane of perfect focus in world units
	DefocusAngle float64 // Aperture cone angle in radians; <= 0 means pinhole
}

// DefaultCameraParams returns a minimal valid configuration
func DefaultCameraParams() CameraParams {
	return CameraParams{
		ImageWidth:      1,
		ImageHeight:     1,
		FOV:             math.Pi / 4,
		SamplesPerPixel: 1,
		FocusDist:       1.0,
		DefocusAngle:    0.0,
	}
}

// Camera turns pixel coordinates into sampled world-space rays
type Camera struct {
	params   CameraParams
	viewport Viewport
	// Transform is the camera's world pose: rotation plus translation
	Transform core.Transform
}

// NewCamera creates a camera at the origin looking down -Z.
// Set Transform to reposition it.
func NewCamera(params CameraParams) *Camera {
	return &Camera{
		params:    params,
		viewport:  newViewport(params),
		Transform: core.IdentityTransform(),
	}
}

// Params returns the camera configuration
func (c *Camera) Params() CameraParams {
	return c.params
}

// Viewport holds the pixel grid and defocus disk basis vectors, derived
// once from the camera parameters rather than per ray. In camera-local
// space the grid sits on the focus plane at z = -focusDist.
type Viewport struct {
	Pixel00Center core.Vec3 // Center of the top-left pixel
	PixelDeltaU   core.Vec3 // Step between horizontally adjacent pixel centers
	PixelDeltaV   core.Vec3 // Step between vertically adjacent pixel centers
	DefocusDiskU  core.Vec3 // Aperture disk basis, horizontal
	DefocusDiskV  core.Vec3 // Aperture disk basis, vertical
}

func newViewport(params CameraParams) Viewport {
	aspectRatio := float64(params.ImageWidth) / float64(params.ImageHeight)
	h := math.Tan(params.FOV / 2)
	height := 2 * h * params.FocusDist
	width := height * aspectRatio

	// V is inverted: image rows grow downward while local +y is up
	pixelDeltaU := core.NewVec3(width/float64(params.ImageWidth), 0, 0)
	pixelDeltaV := core.NewVec3(0, -height/float64(params.ImageHeight), 0)
	pixel00Center := core.NewVec3(-width/2, height/2, -params.FocusDist).
		Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := params.FocusDist * math.Tan(params.DefocusAngle/2)
	defocusDiskU := core.NewVec3(defocusRadius, 0, 0)
	defocusDiskV := core.NewVec3(0, defocusRadius, 0)

	return Viewport{
		Pixel00Center: pixel00Center,
		PixelDeltaU:   pixelDeltaU,
		PixelDeltaV:   pixelDeltaV,
		DefocusDiskU:  defocusDiskU,
		DefocusDiskV:  defocusDiskV,
	}
}

// Rotated returns the viewport with every basis vector rotated
func (v Viewport) Rotated(rotation core.Mat3) Viewport {
	return Viewport{
		Pixel00Center: rotation.MulVec3(v.Pixel00Center),
		PixelDeltaU:   rotation.MulVec3(v.PixelDeltaU),
		PixelDeltaV:   rotation.MulVec3(v.PixelDeltaV),
		DefocusDiskU:  rotation.MulVec3(v.DefocusDiskU),
		DefocusDiskV:  rotation.MulVec3(v.DefocusDiskV),
	}
}

// PixelCenter returns the center of pixel (x, y)
func (v Viewport) PixelCenter(x, y int) core.Vec3 {
	return v.Pixel00Center.
		Add(v.PixelDeltaU.Multiply(float64(x))).
		Add(v.PixelDeltaV.Multiply(float64(y)))
}

// RotatedViewport returns the viewport oriented by the camera's current pose.
// Compute it once per render, not per ray.
func (c *Camera) RotatedViewport() Viewport {
	return c.viewport.Rotated(c.Transform.Rotation)
}

// SampleRay generates a ray through pixel (x, y), jittered inside the pixel
// square for box-filter antialiasing. With a positive defocus angle the ray
// origin is additionally jittered on the aperture disk to simulate depth of
// field. The returned direction is not normalized; intersection math is
// scale-invariant in t.
func (c *Camera) SampleRay(viewport Viewport, x, y int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D().Subtract(core.NewVec2(0.5, 0.5))
	pixelSample := viewport.PixelCenter(x, y).
		Add(viewport.PixelDeltaU.Multiply(offset.X)).
		Add(viewport.PixelDeltaV.Multiply(offset.Y))

	var jitteredOrigin core.Vec3
	if c.params.DefocusAngle > 0 {
		jitteredOrigin = c.defocusDiskSample(viewport, sampler)
	}

	origin := c.Transform.Translation.Add(jitteredOrigin)
	direction := pixelSample.Subtract(jitteredOrigin)

	return core.NewRay(origin, direction)
}

func (c *Camera) defocusDiskSample(viewport Viewport, sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return viewport.DefocusDiskU.Multiply(p.X).Add(viewport.DefocusDiskV.Multiply(p.Y))
}
