package camera

import (
	"math/rand"
	"testing"
)

func TestWavelengthSamplerClampedStaysAboveFloor(t *testing.T) {
	ws := NewWavelengthSampler()
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		wavelength, p := ws.SampleClamped(rng, DefaultMinPdf)
		if p <= DefaultMinPdf {
			t.Fatalf("SampleClamped returned pdf %v at or below the floor %v", p, DefaultMinPdf)
		}
		if wavelength < 380 || wavelength > 780 {
			t.Fatalf("sampled wavelength %v outside the visible range", wavelength)
		}
	}
}

func TestWavelengthSamplerValueMatchesMixture(t *testing.T) {
	ws := NewWavelengthSampler()
	if v := ws.Value(550); v <= 0 {
		t.Errorf("Value(550) = %v, want > 0 inside the visible range", v)
	}
	if v := ws.Value(200); v != 0 {
		t.Errorf("Value(200) = %v, want 0 outside the visible range", v)
	}
}
