package geometry

import (
	"math"
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// ConstantMedium wraps a boundary geometry with a homogeneous participating
// volume of density Density (sigma). A ray entering the boundary scatters
// at an exponentially distributed free-flight distance; if that distance
// would carry it past the boundary's exit, the search continues past the
// exit point (boundary need not be convex).
type ConstantMedium struct {
	Boundary      core.Geometry
	Density       float64
	NegInvDensity float64
	Material      core.Material // isotropic phase-function material
}

// NewConstantMedium wraps boundary with a medium of the given density.
func NewConstantMedium(boundary core.Geometry, density float64, material core.Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		NegInvDensity: -1.0 / density,
		Material:      material,
	}
}

func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (core.HitRecord, bool) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	searchFrom := math.Inf(-1)
	for {
		hit1, ok1 := m.Boundary.Hit(ray, searchFrom, math.Inf(1), rng)
		if !ok1 {
			return core.HitRecord{}, false
		}

		hit2, ok2 := m.Boundary.Hit(ray, hit1.T+1e-4, math.Inf(1), rng)
		if !ok2 {
			return core.HitRecord{}, false
		}

		t1 := math.Max(hit1.T, tMin)
		t2 := math.Min(hit2.T, tMax)
		if t1 >= t2 {
			return core.HitRecord{}, false
		}
		t1 = math.Max(t1, 0)

		rayLength := ray.Direction.Length()
		distanceInsideBoundary := (t2 - t1) * rayLength
		hitDistance := m.NegInvDensity * math.Log(rng.Float64())

		if hitDistance <= distanceInsideBoundary {
			t := t1 + hitDistance/rayLength
			return core.HitRecord{
				T:        t,
				P:        ray.At(t),
				Normal:   core.NewVec3(1, 0, 0), // arbitrary: isotropic phase function ignores it
				Material: m.Material,
				UV:       core.Vec2{},
			}, true
		}

		// Free flight carried us past this segment; keep looking for
		// another boundary crossing further along the ray.
		searchFrom = hit2.T + 1e-4
		if searchFrom >= tMax {
			return core.HitRecord{}, false
		}
	}
}

func (m *ConstantMedium) BoundingBox() core.AABB { return m.Boundary.BoundingBox() }

// Pdf/SampleDirection: media are not used as attractors.
func (m *ConstantMedium) Pdf(origin, direction core.Vec3) float64 { return 0 }

func (m *ConstantMedium) SampleDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return core.NewVec3(0, 1, 0)
}

func (m *ConstantMedium) IsInside(p core.Vec3) bool { return m.Boundary.IsInside(p) }
