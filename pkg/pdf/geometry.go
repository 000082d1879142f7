package pdf

import (
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// Geometry is a direction PDF bound to a piece of geometry: it delegates to
// the geometry's own solid-angle PDF/sampler, evaluated from a fixed
// origin (the current hit point).
type Geometry struct {
	Origin core.Vec3
	Target core.Geometry
}

// NewGeometry binds a geometry's direction PDF to origin.
func NewGeometry(origin core.Vec3, target core.Geometry) *Geometry {
	return &Geometry{Origin: origin, Target: target}
}

func (p *Geometry) Value(direction core.Vec3) float64 {
	return p.Target.Pdf(p.Origin, direction)
}

func (p *Geometry) Sample(rng *rand.Rand) core.Vec3 {
	return p.Target.SampleDirection(p.Origin, rng)
}
