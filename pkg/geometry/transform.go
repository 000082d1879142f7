package geometry

import (
	"math"
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// Transform applies a rigid offset + Euler rotation to an inner geometry.
// Hit tests move the ray into object space (subtract offset, then
// inverse-rotate) and map the resulting point/normal back to world space.
type Transform struct {
	Inner    core.Geometry
	Offset   core.Vec3
	Rotation core.Vec3 // Euler angles in radians, applied X then Y then Z
	bbox     core.AABB
}

// NewTransform wraps inner with the given offset and rotation, precomputing
// the world-space bounding box from the 8 rotated+translated corners.
func NewTransform(inner core.Geometry, offset, rotation core.Vec3) *Transform {
	t := &Transform{Inner: inner, Offset: offset, Rotation: rotation}
	t.bbox = t.computeBoundingBox()
	return t
}

func (t *Transform) toLocal(p core.Vec3) core.Vec3 {
	return p.Subtract(t.Offset).InverseRotate(t.Rotation)
}

func (t *Transform) toLocalDir(d core.Vec3) core.Vec3 {
	return d.InverseRotate(t.Rotation)
}

func (t *Transform) toWorld(p core.Vec3) core.Vec3 {
	return p.Rotate(t.Rotation).Add(t.Offset)
}

func (t *Transform) toWorldDir(d core.Vec3) core.Vec3 {
	return d.Rotate(t.Rotation)
}

func (t *Transform) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (core.HitRecord, bool) {
	localRay := core.NewRay(t.toLocal(ray.Origin), t.toLocalDir(ray.Direction), ray.Wavelength)
	hit, ok := t.Inner.Hit(localRay, tMin, tMax, rng)
	if !ok {
		return core.HitRecord{}, false
	}
	hit.P = t.toWorld(hit.P)
	hit.Normal = t.toWorldDir(hit.Normal)
	return hit, true
}

func (t *Transform) computeBoundingBox() core.AABB {
	inner := t.Inner.BoundingBox()
	corners := [8]core.Vec3{
		{X: inner.Min.X, Y: inner.Min.Y, Z: inner.Min.Z},
		{X: inner.Max.X, Y: inner.Min.Y, Z: inner.Min.Z},
		{X: inner.Min.X, Y: inner.Max.Y, Z: inner.Min.Z},
		{X: inner.Max.X, Y: inner.Max.Y, Z: inner.Min.Z},
		{X: inner.Min.X, Y: inner.Min.Y, Z: inner.Max.Z},
		{X: inner.Max.X, Y: inner.Min.Y, Z: inner.Max.Z},
		{X: inner.Min.X, Y: inner.Max.Y, Z: inner.Max.Z},
		{X: inner.Max.X, Y: inner.Max.Y, Z: inner.Max.Z},
	}

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, c := range corners {
		w := t.toWorld(c)
		min = core.NewVec3(math.Min(min.X, w.X), math.Min(min.Y, w.Y), math.Min(min.Z, w.Z))
		max = core.NewVec3(math.Max(max.X, w.X), math.Max(max.Y, w.Y), math.Max(max.Z, w.Z))
	}
	return core.NewAABB(min, max)
}

func (t *Transform) BoundingBox() core.AABB { return t.bbox }

func (t *Transform) Pdf(origin, direction core.Vec3) float64 {
	return t.Inner.Pdf(t.toLocal(origin), t.toLocalDir(direction))
}

func (t *Transform) SampleDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	localDir := t.Inner.SampleDirection(t.toLocal(origin), rng)
	return t.toWorldDir(localDir)
}

func (t *Transform) IsInside(p core.Vec3) bool {
	return t.Inner.IsInside(t.toLocal(p))
}
