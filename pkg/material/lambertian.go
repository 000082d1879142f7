package material

import (
	"math"
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/core"
	"github.com/dfrene/spectral-tracer/pkg/pdf"
)

// Lambertian is a perfectly diffuse reflector. Its reflectance is either a
// flat value (NewLambertian) or a Gaussian-shaped spectral reflectance
// curve peaked at Wavelength0 with standard deviation Deviation
// (NewSpectralLambertian) — the "gaussian-in-wavelength" attenuation from
// spec.md section 4.2.
type Lambertian struct {
	Reflectance float64
	Spectral    bool
	Wavelength0 float64
	Deviation   float64
}

// NewLambertian creates a Lambertian with uniform (wavelength-independent)
// reflectance.
func NewLambertian(reflectance float64) *Lambertian {
	return &Lambertian{Reflectance: reflectance}
}

// NewSpectralLambertian creates a Lambertian whose reflectance follows a
// Gaussian centered at wavelength0 with the given standard deviation.
func NewSpectralLambertian(peakReflectance, wavelength0, deviation float64) *Lambertian {
	return &Lambertian{
		Reflectance: peakReflectance,
		Spectral:    true,
		Wavelength0: wavelength0,
		Deviation:   deviation,
	}
}

func (l *Lambertian) attenuation(wavelength float64) float64 {
	if !l.Spectral {
		return l.Reflectance
	}
	d := (wavelength - l.Wavelength0) / l.Deviation
	return l.Reflectance * math.Exp(-0.5*d*d)
}

func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Kind:        core.ScatterDiffuse,
		Attenuation: l.attenuation(rayIn.Wavelength),
		Pdf:         pdf.NewCosine(hit.Normal),
	}, true
}

func (l *Lambertian) ScatteringPdf(scattered core.Ray, hit core.HitRecord) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	return math.Max(0, cosine) / math.Pi
}

func (l *Lambertian) Emitted(rayIn core.Ray, hit core.HitRecord) float64 {
	return 0
}
