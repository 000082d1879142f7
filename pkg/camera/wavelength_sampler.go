package camera

import (
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/color"
	"github.com/dfrene/spectral-tracer/pkg/pdf"
)

// DefaultMinPdf is the rejection floor sample_clamped uses by default, to
// avoid near-zero divisors when a path's contribution is normalized by the
// sampling density (spec.md section 4.4).
const DefaultMinPdf = 1e-3

// WavelengthSampler draws a single wavelength per camera ray from a uniform
// mixture of three tabulated PDFs built from the CIE X, Y and Z color
// matching curves.
type WavelengthSampler struct {
	mixture *pdf.Mixture1D
}

// NewWavelengthSampler builds the mixture from the CIE 1931 tables.
func NewWavelengthSampler() *WavelengthSampler {
	x, y, z, lo, hi := color.CIETables()
	px := pdf.NewDiscrete1D(x, lo, hi)
	py := pdf.NewDiscrete1D(y, lo, hi)
	pz := pdf.NewDiscrete1D(z, lo, hi)
	return &WavelengthSampler{mixture: pdf.NewUniformMixture1D(px, py, pz)}
}

// Value returns the mixture PDF at wavelength.
func (w *WavelengthSampler) Value(wavelength float64) float64 {
	return w.mixture.Value(wavelength)
}

// SampleClamped draws wavelengths until one has pdf > minPdf, guaranteed to
// terminate almost surely because the mixture's support is the full
// visible range (spec.md section 7).
func (w *WavelengthSampler) SampleClamped(rng *rand.Rand, minPdf float64) (wavelength, pdfValue float64) {
	for {
		wavelength = w.mixture.Sample(rng)
		pdfValue = w.mixture.Value(wavelength)
		if pdfValue > minPdf {
			return wavelength, pdfValue
		}
	}
}
