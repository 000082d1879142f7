package material

import (
	"math"
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/core"
	"github.com/dfrene/spectral-tracer/pkg/pdf"
)

// mirrorAlphaThreshold is the squared-roughness below which GGX is treated
// as a perfect mirror (spec.md section 4.2).
const mirrorAlphaThreshold = 0.04

// GGX is a Trowbridge-Reitz microfacet reflector. Below
// mirrorAlphaThreshold it degenerates to a specular mirror.
type GGX struct {
	Reflectance float64
	Alpha       float64 // roughness^2
}

// NewGGX creates a GGX material with the given reflectance and roughness
// (alpha = roughness^2).
func NewGGX(reflectance, roughness float64) *GGX {
	return &GGX{Reflectance: reflectance, Alpha: roughness * roughness}
}

func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

func (g *GGX) Scatter(rayIn core.Ray, hit core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	if g.Alpha < mirrorAlphaThreshold {
		reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)
		return core.ScatterRecord{
			Kind:        core.ScatterSpecular,
			Attenuation: g.Reflectance,
			Ray:         core.NewRay(hit.P, reflected, rayIn.Wavelength),
		}, true
	}

	return core.ScatterRecord{
		Kind:        core.ScatterDiffuse,
		Attenuation: g.Reflectance,
		Pdf:         pdf.NewGGX(hit.Normal, g.Alpha),
	}, true
}

func (g *GGX) ScatteringPdf(scattered core.Ray, hit core.HitRecord) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosine <= 0 {
		return 0
	}
	denom := (g.Alpha-1)*cosine*cosine + 1
	return g.Alpha * cosine / (math.Pi * denom * denom)
}

func (g *GGX) Emitted(rayIn core.Ray, hit core.HitRecord) float64 {
	return 0
}
