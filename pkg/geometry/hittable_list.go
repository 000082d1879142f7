package geometry

import (
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// HittableList is a linear container of geometry. It is used directly as a
// small leaf (box faces, BVH leaves) and as the attractor aggregate, where
// Pdf/SampleDirection form a uniform mixture over every member's own
// direction PDF.
type HittableList struct {
	Items []core.Geometry
	bbox  core.AABB
	built bool
}

// NewHittableList creates an empty list.
func NewHittableList() *HittableList {
	return &HittableList{}
}

// NewHittableListOf creates a list pre-populated with items.
func NewHittableListOf(items ...core.Geometry) *HittableList {
	l := &HittableList{Items: items}
	return l
}

// Add appends a geometry to the list.
func (l *HittableList) Add(g core.Geometry) {
	l.Items = append(l.Items, g)
	l.built = false
}

func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (core.HitRecord, bool) {
	var closest core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, item := range l.Items {
		if hit, ok := item.Hit(ray, tMin, closestSoFar, rng); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}
	return closest, hitAnything
}

func (l *HittableList) BoundingBox() core.AABB {
	if !l.built {
		l.bbox = unionBounds(l.Items)
		l.built = true
	}
	return l.bbox
}

func unionBounds(items []core.Geometry) core.AABB {
	if len(items) == 0 {
		return core.AABB{}
	}
	box := items[0].BoundingBox()
	for _, item := range items[1:] {
		box = box.Surround(item.BoundingBox())
	}
	return box
}

// Pdf returns the uniform mixture of every member's direction PDF, i.e. the
// attractor-mixture PDF the path integrator mixes with the material BRDF.
func (l *HittableList) Pdf(origin, direction core.Vec3) float64 {
	if len(l.Items) == 0 {
		return 0
	}
	sum := 0.0
	for _, item := range l.Items {
		sum += item.Pdf(origin, direction)
	}
	return sum / float64(len(l.Items))
}

// SampleDirection picks a member uniformly at random and delegates.
func (l *HittableList) SampleDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	if len(l.Items) == 0 {
		return core.NewVec3(0, 1, 0)
	}
	i := rng.Intn(len(l.Items))
	return l.Items[i].SampleDirection(origin, rng)
}

func (l *HittableList) IsInside(p core.Vec3) bool {
	for _, item := range l.Items {
		if item.IsInside(p) {
			return true
		}
	}
	return false
}
