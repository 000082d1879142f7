package color

import (
	"math"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// GetTristimulus interpolates the CIE 1931 tables at wavelength (nm),
// returning the (X,Y,Z) tristimulus contribution of one nanometer of that
// wavelength's spectral power. Fades to zero with partial weight just
// outside the sampled range ([375,380) and (780,785)) before going fully
// dark, instead of hard-clamping at the table edges (spec.md section 4.7 /
// section 9).
func GetTristimulus(wavelength float64) core.Vec3 {
	last := len(cieX) - 1
	indexf := (wavelength - cieLo) / cieStep
	index := int(math.Floor(indexf))
	remainder := indexf - float64(index)

	switch {
	case index < -1 || index > last:
		return core.Vec3{}
	case index == -1:
		// Left edge: fading in from 375nm toward the first sample at 380nm.
		return core.NewVec3(cieX[0]*remainder, cieY[0]*remainder, cieZ[0]*remainder)
	case index == last:
		// Right edge: fading out from the last sample at 780nm toward 785nm.
		return core.NewVec3(cieX[last]*(1-remainder), cieY[last]*(1-remainder), cieZ[last]*(1-remainder))
	default:
		x := cieX[index]*(1-remainder) + cieX[index+1]*remainder
		y := cieY[index]*(1-remainder) + cieY[index+1]*remainder
		z := cieZ[index]*(1-remainder) + cieZ[index+1]*remainder
		return core.NewVec3(x, y, z)
	}
}

// CIETables exposes the raw sample arrays and the wavelength grid, used by
// the wavelength sampler to build its per-channel Discrete1D tables.
func CIETables() (x, y, z []float64, lo, hi float64) {
	return cieX, cieY, cieZ, cieLo, cieHi
}

// srgbD65 is the XYZ -> linear sRGB (D65 white point) matrix.
var srgbD65 = [3][3]float64{
	{3.2406, -1.5372, -0.4986},
	{-0.9689, 1.8758, 0.0415},
	{0.0557, -0.2040, 1.0570},
}

// CIEToRGB converts a CIE XYZ tristimulus value to gamma-encoded sRGB,
// clamping each linear channel to [0,1] before applying the sRGB piecewise
// gamma.
func CIEToRGB(xyz core.Vec3) core.Vec3 {
	r := srgbD65[0][0]*xyz.X + srgbD65[0][1]*xyz.Y + srgbD65[0][2]*xyz.Z
	g := srgbD65[1][0]*xyz.X + srgbD65[1][1]*xyz.Y + srgbD65[1][2]*xyz.Z
	b := srgbD65[2][0]*xyz.X + srgbD65[2][1]*xyz.Y + srgbD65[2][2]*xyz.Z

	linear := core.NewVec3(r, g, b).Clamp(0, 1)
	return core.NewVec3(
		sRGBGamma(linear.X),
		sRGBGamma(linear.Y),
		sRGBGamma(linear.Z),
	)
}

// sRGBGamma applies the sRGB piecewise transfer function to a single linear
// channel value already clamped to [0,1].
func sRGBGamma(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// FindExposure returns mean(Y) + stddev(Y) over the buffer, the auto-
// exposure scale factor applied before tone mapping to display RGB.
func FindExposure(buf []core.Vec3) float64 {
	if len(buf) == 0 {
		return 1
	}
	mean := 0.0
	for _, v := range buf {
		mean += v.Y
	}
	mean /= float64(len(buf))

	variance := 0.0
	for _, v := range buf {
		d := v.Y - mean
		variance += d * d
	}
	variance /= float64(len(buf))

	return mean + math.Sqrt(variance)
}

// Planck constants in SI units, used by BlackbodySpectrum.
const (
	planckH  = 6.62607015e-34 // J*s
	speedC   = 2.99792458e8   // m/s
	boltzK   = 1.380649e-23   // J/K
	wienB    = 2.8977721e-3   // m*K, Wien displacement constant
	nmToMetr = 1e-9
)

func planckRadiance(wavelengthNm, temperature float64) float64 {
	lambda := wavelengthNm * nmToMetr
	numerator := 2 * planckH * speedC * speedC
	exponent := (planckH * speedC) / (lambda * boltzK * temperature)
	denominator := math.Pow(lambda, 5) * (math.Exp(exponent) - 1)
	return numerator / denominator
}

// BlackbodySpectrum evaluates Planck's law at (wavelength, temperature),
// normalized so the value at the Wien-displacement peak wavelength equals
// 1 (spec.md section 4.2).
func BlackbodySpectrum(wavelengthNm, temperature float64) float64 {
	peakWavelengthNm := (wienB / temperature) / nmToMetr
	peak := planckRadiance(peakWavelengthNm, temperature)
	if peak == 0 {
		return 0
	}
	return planckRadiance(wavelengthNm, temperature) / peak
}
