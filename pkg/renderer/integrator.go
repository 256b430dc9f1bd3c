package renderer

import (
	"math"

	"github.com/user/spacer/pkg/core"
	"github.com/user/spacer/pkg/geometry"
)

// shadowEpsilon is the lower bound of every intersection query after the
// first bounce; it keeps a scattered ray from re-hitting the surface it
// just left (shadow acne)
const shadowEpsilon = 0.001

// PathTracer returns an integrator that estimates radiance by recursively
// following scattered rays through the world until the bounce budget runs
// out, the path is absorbed, or the ray escapes into the background
// gradient between bottomColor and topColor.
func PathTracer(world geometry.Hittable, maxBounces int, bottomColor, topColor core.Vec3) Integrator {
	var rayColor func(ray core.Ray, bounces int, sampler core.Sampler) core.Vec3
	rayColor = func(ray core.Ray, bounces int, sampler core.Sampler) core.Vec3 {
		// Energy budget exhausted, hard cutoff
		if bounces <= 0 {
			return core.Vec3{}
		}

		hit, ok := world.Hit(ray, core.NewInterval(shadowEpsilon, math.Inf(1)))
		if !ok {
			return backgroundGradient(ray, bottomColor, topColor)
		}

		scatter, ok := hit.Material.Scatter(ray, *hit, sampler)
		if !ok {
			// Absorbed
			return core.Vec3{}
		}

		return scatter.Attenuation.MultiplyVec(rayColor(scatter.Scattered, bounces-1, sampler))
	}

	return func(ray core.Ray, sampler core.Sampler) core.Vec3 {
		return rayColor(ray, maxBounces, sampler)
	}
}

// NormalShader returns a debug integrator that colors surfaces by their
// normal, mapped from [-1,1] to [0,1] per component
func NormalShader(world geometry.Hittable, bottomColor, topColor core.Vec3) Integrator {
	return func(ray core.Ray, sampler core.Sampler) core.Vec3 {
		if hit, ok := world.Hit(ray, core.NewInterval(0, math.Inf(1))); ok {
			return hit.Normal.Add(core.Splat(1)).Multiply(0.5)
		}
		return backgroundGradient(ray, bottomColor, topColor)
	}
}

// backgroundGradient is the infinite sky dome: a vertical lerp from
// bottomColor to topColor over the normalized ray direction
func backgroundGradient(ray core.Ray, bottomColor, topColor core.Vec3) core.Vec3 {
	unitDir := ray.Direction.Normalize()
	a := 0.5 * (unitDir.Y + 1.0)
	return bottomColor.Lerp(topColor, a)
}
