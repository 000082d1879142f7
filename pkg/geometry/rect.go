package geometry

import (
	"math"
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// RectPlane names the plane an AARect lies in.
type RectPlane int

const (
	PlaneXY RectPlane = iota
	PlaneXZ
	PlaneYZ
)

// AARect is an axis-aligned rectangle used directly as a light/wall panel
// and as a face of AABox. Normal orientation is fixed by Plane (see
// NewAARect) to match the box-composition convention: callers needing the
// opposite orientation wrap the rect in FlipNormals.
type AARect struct {
	Plane    RectPlane
	K        float64 // coordinate of the plane along its normal axis
	A0, A1   float64 // bounds along the first in-plane axis
	B0, B1   float64 // bounds along the second in-plane axis
	Normal   core.Vec3
	Material core.Material
}

// NewAARect creates a rect in the given plane at coordinate k, spanning
// [a0,a1]x[b0,b1] in the plane's two in-plane axes (X,Y for XY; X,Z for XZ;
// Y,Z for YZ).
func NewAARect(plane RectPlane, k, a0, a1, b0, b1 float64, material core.Material) *AARect {
	var normal core.Vec3
	switch plane {
	case PlaneXY:
		normal = core.NewVec3(0, 0, 1)
	case PlaneXZ:
		normal = core.NewVec3(0, -1, 0)
	case PlaneYZ:
		normal = core.NewVec3(1, 0, 0)
	}
	return &AARect{Plane: plane, K: k, A0: a0, A1: a1, B0: b0, B1: b1, Normal: normal, Material: material}
}

// components splits v into its coordinate along the rect's normal axis (k)
// and its two in-plane coordinates (a, b); point is the inverse.
func (r *AARect) components(v core.Vec3) (k, a, b float64) {
	switch r.Plane {
	case PlaneXY:
		return v.Z, v.X, v.Y
	case PlaneXZ:
		return v.Y, v.X, v.Z
	default: // PlaneYZ
		return v.X, v.Y, v.Z
	}
}

func (r *AARect) point(k, a, b float64) core.Vec3 {
	switch r.Plane {
	case PlaneXY:
		return core.NewVec3(a, b, k)
	case PlaneXZ:
		return core.NewVec3(a, k, b)
	default: // PlaneYZ
		return core.NewVec3(k, a, b)
	}
}

// Hit intersects the ray with the rect's plane and rejects hits outside
// [A0,A1]x[B0,B1].
func (r *AARect) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (core.HitRecord, bool) {
	originK, originA, originB := r.components(ray.Origin)
	dirK, dirA, dirB := r.components(ray.Direction)

	if dirK == 0 {
		return core.HitRecord{}, false
	}
	t := (r.K - originK) / dirK
	if t <= tMin || t >= tMax {
		return core.HitRecord{}, false
	}

	a := originA + t*dirA
	b := originB + t*dirB
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return core.HitRecord{}, false
	}

	p := r.point(r.K, a, b)
	uv := core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0))

	return core.HitRecord{T: t, P: p, Normal: r.Normal, Material: r.Material, UV: uv}, true
}

// BoundingBox returns a box with a small epsilon thickness along the normal
// axis so the rect participates correctly in BVH slab tests.
func (r *AARect) BoundingBox() core.AABB {
	const eps = 1e-4
	min := r.point(r.K-eps, r.A0, r.B0)
	max := r.point(r.K+eps, r.A1, r.B1)
	return core.AABB{
		Min: core.NewVec3(math.Min(min.X, max.X), math.Min(min.Y, max.Y), math.Min(min.Z, max.Z)),
		Max: core.NewVec3(math.Max(min.X, max.X), math.Max(min.Y, max.Y), math.Max(min.Z, max.Z)),
	}
}

// Pdf returns the solid-angle PDF of sampling a point on this rect from
// origin along direction: dist^2 / (|cos theta| * area).
func (r *AARect) Pdf(origin, direction core.Vec3) float64 {
	hit, ok := r.Hit(core.NewRay(origin, direction, 0), 1e-3, math.Inf(1), nil)
	if !ok {
		return 0
	}
	area := (r.A1 - r.A0) * (r.B1 - r.B0)
	distSq := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Normalize().Dot(r.Normal))
	denom := cosine * area
	if denom <= 0 {
		return 0
	}
	return distSq / denom
}

// SampleDirection returns a direction from origin toward a uniformly chosen
// point on the rect.
func (r *AARect) SampleDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	a := r.A0 + rng.Float64()*(r.A1-r.A0)
	b := r.B0 + rng.Float64()*(r.B1-r.B0)
	p := r.point(r.K, a, b)
	return p.Subtract(origin)
}

// IsInside is always false: a rect has no interior.
func (r *AARect) IsInside(p core.Vec3) bool { return false }
