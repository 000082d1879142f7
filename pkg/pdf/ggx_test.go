package pdf

import (
	"math"
	"testing"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

func TestGGXPdfNormalizesForSeveralRoughnesses(t *testing.T) {
	w := core.NewVec3(0, 0, 1)
	for _, alpha := range []float64{0.1, 0.3, 0.7} {
		g := NewGGX(w, alpha)
		integral := integrateHemisphere(w, g.Value)
		if math.Abs(integral-1) > 0.02 {
			t.Errorf("GGX(alpha=%v) integral over hemisphere = %v, want ~1", alpha, integral)
		}
	}
}
