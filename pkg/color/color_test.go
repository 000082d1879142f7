package color

import (
	"math"
	"testing"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

func TestGetTristimulusOutsideVisibleRangeIsZero(t *testing.T) {
	if v := GetTristimulus(300); v != (core.Vec3{}) {
		t.Errorf("GetTristimulus(300) = %v, want zero vector", v)
	}
	if v := GetTristimulus(900); v != (core.Vec3{}) {
		t.Errorf("GetTristimulus(900) = %v, want zero vector", v)
	}
}

func TestGetTristimulusFadesWithPartialWeightAtBothEdges(t *testing.T) {
	// 377nm sits 2/5 of the way from the dark boundary at 375nm toward the
	// first sample at 380nm, so it should carry 0.4 of the first sample's
	// weight.
	got := GetTristimulus(377)
	want := GetTristimulus(380).Multiply(0.4)
	if math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("GetTristimulus(377).Y = %v, want %v (0.4 of the 380nm sample)", got.Y, want.Y)
	}
	if got == (core.Vec3{}) {
		t.Errorf("GetTristimulus(377) = zero vector, want a fading-in partial weight")
	}

	// 782nm sits 2/5 of the way from the last sample at 780nm toward the
	// dark boundary at 785nm, so it should carry 0.6 of the last sample's
	// weight.
	got = GetTristimulus(782)
	want = GetTristimulus(780).Multiply(0.6)
	if math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("GetTristimulus(782).Y = %v, want %v (0.6 of the 780nm sample)", got.Y, want.Y)
	}

	if v := GetTristimulus(374); v != (core.Vec3{}) {
		t.Errorf("GetTristimulus(374) = %v, want zero vector (just past the fade-in boundary)", v)
	}
	if v := GetTristimulus(786); v != (core.Vec3{}) {
		t.Errorf("GetTristimulus(786) = %v, want zero vector (just past the fade-out boundary)", v)
	}
}

func TestGetTristimulusInterpolatesBetweenSamples(t *testing.T) {
	lo := GetTristimulus(500)
	mid := GetTristimulus(502.5)
	hi := GetTristimulus(505)

	want := lo.Add(hi).Multiply(0.5)
	if math.Abs(mid.Y-want.Y) > 1e-9 {
		t.Errorf("midpoint Y = %v, want %v", mid.Y, want.Y)
	}
}

func TestCIEToRGBClampsAndAppliesSRGBGamma(t *testing.T) {
	white := CIEToRGB(core.NewVec3(0.9505, 1.0, 1.089))
	if white.X < 0.9 || white.X > 1.01 {
		t.Errorf("D65 white converted to R=%v, want close to 1", white.X)
	}

	black := CIEToRGB(core.NewVec3(0, 0, 0))
	if black.X != 0 || black.Y != 0 || black.Z != 0 {
		t.Errorf("black XYZ converted to %v, want zero", black)
	}

	overflowed := CIEToRGB(core.NewVec3(10, 10, 10))
	if overflowed.X > 1 || overflowed.Y > 1 || overflowed.Z > 1 {
		t.Errorf("CIEToRGB did not clamp overflowing input: %v", overflowed)
	}
}

func TestFindExposureOfConstantBufferIsItsLuminance(t *testing.T) {
	buf := make([]core.Vec3, 100)
	for i := range buf {
		buf[i] = core.NewVec3(0.2, 0.5, 0.1)
	}
	exposure := FindExposure(buf)
	// Constant buffer has zero standard deviation, so exposure == mean(Y).
	if math.Abs(exposure-0.5) > 1e-9 {
		t.Errorf("FindExposure of constant buffer = %v, want 0.5", exposure)
	}
}

func TestBlackbodySpectrumPeaksNearWienWavelength(t *testing.T) {
	const temperature = 5000.0
	peakWavelength := (2.8977721e-3 / temperature) / 1e-9

	peakValue := BlackbodySpectrum(peakWavelength, temperature)
	if math.Abs(peakValue-1) > 1e-6 {
		t.Errorf("BlackbodySpectrum at Wien peak = %v, want 1", peakValue)
	}

	off := BlackbodySpectrum(peakWavelength+200, temperature)
	if off >= peakValue {
		t.Errorf("spectrum away from the peak (%v) should be lower than at the peak (%v)", off, peakValue)
	}
}
