package material

import (
	"math"
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// Spectrum evaluates a material's relative spectral power at a wavelength
// (nm); DiffuseEmissive and FalloffEmissive multiply it by Intensity.
type Spectrum func(wavelengthNm float64) float64

// ConstantSpectrum returns a flat (wavelength-independent) Spectrum.
func ConstantSpectrum(value float64) Spectrum {
	return func(float64) float64 { return value }
}

// frontFacing reports whether rayIn arrives from the normal-positive side,
// i.e. it travels against the outward normal.
func frontFacing(rayIn core.Ray, hit core.HitRecord) bool {
	return rayIn.Direction.Dot(hit.Normal) < 0
}

// DiffuseEmissive is a one-sided area light: it emits Spectrum(wavelength)
// * Intensity from its normal-positive side and never scatters.
type DiffuseEmissive struct {
	Spectrum  Spectrum
	Intensity float64
}

// NewDiffuseEmissive creates a one-sided emitter with a flat spectrum.
func NewDiffuseEmissive(intensity float64) *DiffuseEmissive {
	return &DiffuseEmissive{Spectrum: ConstantSpectrum(1), Intensity: intensity}
}

// NewSpectralDiffuseEmissive creates a one-sided emitter with a custom
// spectral shape (e.g. color.BlackbodySpectrum bound to a temperature).
func NewSpectralDiffuseEmissive(spectrum Spectrum, intensity float64) *DiffuseEmissive {
	return &DiffuseEmissive{Spectrum: spectrum, Intensity: intensity}
}

func (e *DiffuseEmissive) Scatter(rayIn core.Ray, hit core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

func (e *DiffuseEmissive) ScatteringPdf(scattered core.Ray, hit core.HitRecord) float64 {
	return 0
}

func (e *DiffuseEmissive) Emitted(rayIn core.Ray, hit core.HitRecord) float64 {
	if !frontFacing(rayIn, hit) {
		return 0
	}
	return e.Spectrum(rayIn.Wavelength) * e.Intensity
}

// FalloffEmissive is a spot light: DiffuseEmissive additionally attenuated
// by a smooth angular falloff between the normal (full intensity within
// CosThetaIn of it) and CosThetaOut (zero beyond it), shaped by Falloff.
type FalloffEmissive struct {
	Spectrum               Spectrum
	Intensity              float64
	CosThetaIn, CosThetaOut float64
	Falloff                float64
}

// NewFalloffEmissive creates a spot light with the given plateau/cutoff
// angles (radians) and falloff exponent.
func NewFalloffEmissive(intensity, thetaIn, thetaOut, falloff float64) *FalloffEmissive {
	return &FalloffEmissive{
		Spectrum:    ConstantSpectrum(1),
		Intensity:   intensity,
		CosThetaIn:  math.Cos(thetaIn),
		CosThetaOut: math.Cos(thetaOut),
		Falloff:     falloff,
	}
}

func (e *FalloffEmissive) Scatter(rayIn core.Ray, hit core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

func (e *FalloffEmissive) ScatteringPdf(scattered core.Ray, hit core.HitRecord) float64 {
	return 0
}

func (e *FalloffEmissive) angleAttenuation(rayIn core.Ray, hit core.HitRecord) float64 {
	cosTheta := hit.Normal.Dot(rayIn.Direction.Negate().Normalize())
	if cosTheta >= e.CosThetaIn {
		return 1
	}
	if cosTheta <= e.CosThetaOut {
		return 0
	}
	delta := (cosTheta - e.CosThetaOut) / (e.CosThetaIn - e.CosThetaOut)
	return math.Pow(delta, e.Falloff)
}

func (e *FalloffEmissive) Emitted(rayIn core.Ray, hit core.HitRecord) float64 {
	if !frontFacing(rayIn, hit) {
		return 0
	}
	return e.Spectrum(rayIn.Wavelength) * e.Intensity * e.angleAttenuation(rayIn, hit)
}
