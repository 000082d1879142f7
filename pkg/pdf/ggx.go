package pdf

import (
	"math"
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// GGX is the Trowbridge-Reitz (GGX) half-vector-aligned PDF about the
// surface normal W with squared roughness Alpha.
type GGX struct {
	W     core.Vec3
	Alpha float64
}

// NewGGX creates a GGX PDF oriented around the normal with squared
// roughness alpha.
func NewGGX(w core.Vec3, alpha float64) *GGX {
	return &GGX{W: w, Alpha: alpha}
}

// Value evaluates the GGX distribution density D(cos theta).
func (p *GGX) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.W)
	if cosine <= 0 {
		return 0
	}
	denom := (p.Alpha-1)*cosine*cosine + 1
	return p.Alpha * cosine / (math.Pi * denom * denom)
}

// Sample draws a half-vector from the GGX distribution via inverse-CDF in
// the local frame and re-expresses it around W.
func (p *GGX) Sample(rng *rand.Rand) core.Vec3 {
	local := core.RandomGGXDirection(p.Alpha, rng)
	return core.ONBLocal(p.W, local)
}
