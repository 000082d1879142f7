package geometry

import (
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// FlipNormals wraps a Geometry and negates its outward normal, used to turn
// a rect's natural orientation into the opposite one (e.g. the three "back"
// faces of an AABox).
type FlipNormals struct {
	Inner core.Geometry
}

// NewFlipNormals wraps inner so its hit normals are negated.
func NewFlipNormals(inner core.Geometry) *FlipNormals {
	return &FlipNormals{Inner: inner}
}

func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (core.HitRecord, bool) {
	hit, ok := f.Inner.Hit(ray, tMin, tMax, rng)
	if !ok {
		return core.HitRecord{}, false
	}
	hit.Normal = hit.Normal.Negate()
	return hit, true
}

func (f *FlipNormals) BoundingBox() core.AABB { return f.Inner.BoundingBox() }

func (f *FlipNormals) Pdf(origin, direction core.Vec3) float64 {
	return f.Inner.Pdf(origin, direction)
}

func (f *FlipNormals) SampleDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return f.Inner.SampleDirection(origin, rng)
}

func (f *FlipNormals) IsInside(p core.Vec3) bool { return f.Inner.IsInside(p) }
