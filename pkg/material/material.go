package material

import (
	"math"

	"github.com/user/spacer/pkg/core"
)

// Kind discriminates the closed set of material variants
type Kind int

const (
	// KindLambertian is a perfectly diffuse surface
	KindLambertian Kind = iota
	// KindMetal is a specular reflector with optional fuzz
	KindMetal
	// KindDielectric is a clear refractive medium like glass
	KindDielectric
)

// Material is a tagged union over the supported surface models. The variant
// set is closed, so a switch on Kind replaces dynamic dispatch in the hot
// scattering path. Values are immutable once attached to a primitive.
type Material struct {
	Kind   Kind
	Albedo core.Vec3 // Lambertian and Metal color
	Fuzz   float64   // Metal reflection perturbation in [0, 1]
	IOR    float64   // Dielectric index of refraction
}

// NewLambertian creates a diffuse material with the given albedo
func NewLambertian(albedo core.Vec3) Material {
	return Material{Kind: KindLambertian, Albedo: albedo}
}

// NewMetal creates a metallic material. Fuzz is clamped to [0, 1];
// zero is a perfect mirror.
func NewMetal(albedo core.Vec3, fuzz float64) Material {
	return Material{Kind: KindMetal, Albedo: albedo, Fuzz: max(0, min(1, fuzz))}
}

// NewDielectric creates a clear refractive material with the given index
// of refraction relative to the surrounding medium
func NewDielectric(ior float64) Material {
	return Material{Kind: KindDielectric, IOR: ior}
}

// ScatterResult contains the outgoing ray and color attenuation produced
// by a scattering event
type ScatterResult struct {
	Attenuation core.Vec3
	Scattered   core.Ray
}

// Scatter computes how an incoming ray bounces off a surface hit. The second
// return value is false when the ray is absorbed and the path terminates.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(hit, sampler)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, sampler)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, sampler)
	default:
		return ScatterResult{}, false
	}
}

// scatterLambertian scatters into the hemisphere around the normal with a
// cosine-weighted distribution (normal plus a random unit vector). Diffuse
// surfaces never absorb; attenuation is always the albedo.
func (m Material) scatterLambertian(hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDir := hit.Normal.Add(core.RandomUnitVector(sampler))
	if scatterDir.NearZero() {
		// The random vector cancelled the normal almost exactly
		scatterDir = hit.Normal
	}

	return ScatterResult{
		Attenuation: m.Albedo,
		Scattered:   core.NewRay(hit.Point, scatterDir),
	}, true
}

// scatterMetal reflects the incoming direction about the normal and perturbs
// it by Fuzz. A perturbed direction that dips below the surface is absorbed,
// which keeps heavy fuzz from leaking light through the back face.
func (m Material) scatterMetal(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := rayIn.Direction.Reflect(hit.Normal)
	fuzzed := reflected.Normalize().Add(core.RandomUnitVector(sampler).Multiply(m.Fuzz))

	if fuzzed.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Attenuation: m.Albedo,
		Scattered:   core.NewRay(hit.Point, fuzzed),
	}, true
}

// scatterDielectric refracts through the surface when Snell's law permits,
// otherwise reflects. Reflection is also chosen probabilistically based on
// Schlick's approximation of Fresnel reflectance. Clear glass absorbs
// nothing, so attenuation is always white.
func (m Material) scatterDielectric(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// The ratio is always outside-IOR over inside-IOR along the travel direction
	eta := m.IOR
	if hit.FrontFace {
		eta = 1.0 / m.IOR
	}

	unitDir := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDir.Dot(hit.Normal), 1.0)

	direction, refracted := unitDir.Refract(hit.Normal, eta)
	if !refracted || Reflectance(cosTheta, eta) > sampler.Get1D() {
		direction = unitDir.Reflect(hit.Normal)
	}

	return ScatterResult{
		Attenuation: core.NewVec3(1, 1, 1),
		Scattered:   core.NewRay(hit.Point, direction),
	}, true
}

// Reflectance computes Schlick's approximation of Fresnel reflectance
func Reflectance(cosine, ior float64) float64 {
	r0 := (1 - ior) / (1 + ior)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
