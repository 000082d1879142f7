package geometry

import (
	"math/rand"
	"sort"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// leafThreshold bounds how many objects a BVH leaf stores as a flat
// HittableList before the builder splits again.
const leafThreshold = 4

// BVHNode is an internal node of the bounding volume hierarchy: left and
// right are each either another BVHNode or a leaf Geometry (a single
// primitive or a small HittableList).
type BVHNode struct {
	Left, Right core.Geometry
	Box         core.AABB
}

// NewBVH builds a BVH over items by recursively splitting on the axis of
// largest extent, sorting by the midpoint-sum of each item's bounding box
// on that axis and splitting at the median (spec.md section 4.1).
func NewBVH(items []core.Geometry) core.Geometry {
	if len(items) == 0 {
		panic("geometry: NewBVH called with zero objects")
	}
	cpy := make([]core.Geometry, len(items))
	copy(cpy, items)
	return buildBVH(cpy)
}

func buildBVH(items []core.Geometry) core.Geometry {
	if len(items) == 1 {
		return items[0]
	}
	if len(items) <= leafThreshold {
		return NewHittableListOf(items...)
	}

	bounds := unionBounds(items)
	axis := bounds.LongestAxis()
	if bounds.Size().X <= 0 && bounds.Size().Y <= 0 && bounds.Size().Z <= 0 {
		return NewHittableListOf(items...)
	}

	sort.Slice(items, func(i, j int) bool {
		bi := items[i].BoundingBox()
		bj := items[j].BoundingBox()
		return bi.AxisMinMaxSum(axis) < bj.AxisMinMaxSum(axis)
	})

	mid := len(items) / 2
	left := buildBVH(items[:mid])
	right := buildBVH(items[mid:])

	return &BVHNode{
		Left:  left,
		Right: right,
		Box:   left.BoundingBox().Surround(right.BoundingBox()),
	}
}

func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (core.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return core.HitRecord{}, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, rng)
	closest := tMax
	if hitLeft {
		closest = leftHit.T
	}

	rightHit, hitRight := n.Right.Hit(ray, tMin, closest, rng)
	if hitRight {
		return rightHit, true
	}
	if hitLeft {
		return leftHit, true
	}
	return core.HitRecord{}, false
}

func (n *BVHNode) BoundingBox() core.AABB { return n.Box }

// Pdf/SampleDirection/IsInside are never called on a BVH node directly: the
// integrator addresses attractors through the flat HittableList built
// alongside the world BVH, not through the acceleration structure.
func (n *BVHNode) Pdf(origin, direction core.Vec3) float64 { return 0 }

func (n *BVHNode) SampleDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return core.NewVec3(0, 1, 0)
}

func (n *BVHNode) IsInside(p core.Vec3) bool { return false }
