package scene

import (
	"math"

	"github.com/user/spacer/pkg/core"
	"github.com/user/spacer/pkg/geometry"
	"github.com/user/spacer/pkg/material"
	"github.com/user/spacer/pkg/renderer"
)

// CoverScene builds the book-cover world: a huge gray ground sphere, a 22x22
// grid of small randomized spheres, and three large feature spheres (glass,
// lambertian, metal). The small spheres are placed from the given seed, so
// the same seed reproduces the same world.
func CoverScene(width, height int, samplesPerPixel int, seed int64) *Scene {
	s := NewScene()
	s.CameraParams = renderer.CameraParams{
		ImageWidth:      width,
		ImageHeight:     height,
		FOV:             20 * math.Pi / 180,
		SamplesPerPixel: samplesPerPixel,
		FocusDist:       10.0,
		DefocusAngle:    0.6 * math.Pi / 180,
	}
	s.CameraTransform = core.LookAt(core.NewVec3(13, 2, 3), core.Vec3{}, core.NewVec3(0, 1, 0))

	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	sampler := core.NewSeededSampler(seed)
	randColor := func() core.Vec3 {
		return core.NewVec3(sampler.Get1D(), sampler.Get1D(), sampler.Get1D())
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				mat = material.NewLambertian(randColor().MultiplyVec(randColor()))
			case chooseMat < 0.95:
				albedo := randColor().Multiply(0.5).Add(core.Splat(0.5))
				mat = material.NewMetal(albedo, 0.5*sampler.Get1D())
			default:
				mat = material.NewDielectric(1.5)
			}

			s.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	s.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0,
		material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	s.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0,
		material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return s
}

// ThreeSphereScene builds the material test world: lambertian center, a
// hollow glass sphere on the left (outer shell plus an inner air bubble) and
// a fully fuzzed metal sphere on the right
func ThreeSphereScene(width, height int, samplesPerPixel int) *Scene {
	s := NewScene()
	s.CameraParams = renderer.CameraParams{
		ImageWidth:      width,
		ImageHeight:     height,
		FOV:             math.Pi / 2,
		SamplesPerPixel: samplesPerPixel,
		FocusDist:       1.0,
		DefocusAngle:    0.0,
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100,
		material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5,
		material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))))
	s.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5,
		material.NewDielectric(1.5)))
	// Index below 1 models the air pocket inside the glass shell
	s.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4,
		material.NewDielectric(1.0/1.5)))
	s.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5,
		material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)))

	return s
}

// SingleSphereScene builds the smallest interesting world: a red sphere in
// front of the camera over a green ground sphere, with a wide 90 degree FOV
func SingleSphereScene(width, height int, samplesPerPixel int) *Scene {
	s := NewScene()
	s.CameraParams = renderer.CameraParams{
		ImageWidth:      width,
		ImageHeight:     height,
		FOV:             math.Pi / 2,
		SamplesPerPixel: samplesPerPixel,
		FocusDist:       1.0,
		DefocusAngle:    0.0,
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5,
		material.NewLambertian(core.NewVec3(1, 0, 0))))
	s.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100,
		material.NewLambertian(core.NewVec3(0, 1, 0))))

	return s
}
