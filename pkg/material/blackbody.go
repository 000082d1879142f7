package material

import (
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/color"
	"github.com/dfrene/spectral-tracer/pkg/core"
)

// Blackbody is an emissive material whose spectrum follows Planck's law at
// Temperature (kelvin). NewBlackbody produces an ideal radiator that
// absorbs everything it doesn't emit; NewBlackbodyCoated additionally
// scatters like a Lambertian of the given reflectance, modeling a
// non-ideal radiator with a diffuse base coat.
type Blackbody struct {
	Temperature float64
	Intensity   float64
	coat        *Lambertian // nil for the ideal radiator
}

// NewBlackbody creates an ideal blackbody emitter: it never scatters.
func NewBlackbody(temperature, intensity float64) *Blackbody {
	return &Blackbody{Temperature: temperature, Intensity: intensity}
}

// NewBlackbodyCoated creates a blackbody emitter that also reflects like a
// Lambertian surface of the given reflectance (a non-ideal radiator).
func NewBlackbodyCoated(temperature, intensity, reflectance float64) *Blackbody {
	return &Blackbody{Temperature: temperature, Intensity: intensity, coat: NewLambertian(reflectance)}
}

func (b *Blackbody) Scatter(rayIn core.Ray, hit core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	if b.coat == nil {
		return core.ScatterRecord{}, false
	}
	return b.coat.Scatter(rayIn, hit, rng)
}

func (b *Blackbody) ScatteringPdf(scattered core.Ray, hit core.HitRecord) float64 {
	if b.coat == nil {
		return 0
	}
	return b.coat.ScatteringPdf(scattered, hit)
}

func (b *Blackbody) Emitted(rayIn core.Ray, hit core.HitRecord) float64 {
	if !frontFacing(rayIn, hit) {
		return 0
	}
	return color.BlackbodySpectrum(rayIn.Wavelength, b.Temperature) * b.Intensity
}
