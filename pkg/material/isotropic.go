package material

import (
	"math"
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// uniformSpherePdf is the constant 1/(4*pi) direction PDF used by Isotropic
// phase-function scattering.
type uniformSpherePdf struct{}

func (uniformSpherePdf) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

func (uniformSpherePdf) Sample(rng *rand.Rand) core.Vec3 {
	z := 1 - 2*rng.Float64()
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * rng.Float64()
	return core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// Isotropic is the phase function of a ConstantMedium: it scatters equally
// in every direction.
type Isotropic struct {
	Albedo float64
}

// NewIsotropic creates an isotropic phase-function material.
func NewIsotropic(albedo float64) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

func (i *Isotropic) Scatter(rayIn core.Ray, hit core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Kind:        core.ScatterDiffuse,
		Attenuation: i.Albedo,
		Pdf:         uniformSpherePdf{},
	}, true
}

func (i *Isotropic) ScatteringPdf(scattered core.Ray, hit core.HitRecord) float64 {
	return 1.0 / (4.0 * math.Pi)
}

func (i *Isotropic) Emitted(rayIn core.Ray, hit core.HitRecord) float64 {
	return 0
}
