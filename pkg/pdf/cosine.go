// Package pdf implements the direction and wavelength probability
// densities of spec.md section 4.3: cosine-weighted hemisphere, GGX
// half-vector, geometry solid-angle, tabulated 1D, and uniform/power-
// heuristic mixtures of any of the above.
package pdf

import (
	"math"
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// Cosine is a cosine-weighted hemisphere PDF about axis W.
type Cosine struct {
	W core.Vec3
}

// NewCosine creates a cosine PDF oriented around the given normal.
func NewCosine(w core.Vec3) *Cosine {
	return &Cosine{W: w}
}

func (p *Cosine) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.W)
	return math.Max(0, cosine) / math.Pi
}

func (p *Cosine) Sample(rng *rand.Rand) core.Vec3 {
	local := core.RandomCosineDirection(rng)
	return core.ONBLocal(p.W, local)
}
