package geometry

import (
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// AABox is an axis-aligned box composed of 6 AARects: three "front" faces
// whose natural rect orientation already points outward, and three "back"
// faces wrapped in FlipNormals so all six outward normals point away from
// the box center.
type AABox struct {
	Min, Max core.Vec3
	faces    *HittableList
}

// NewAABox builds a box spanning [min,max] out of 6 rects sharing material.
func NewAABox(min, max core.Vec3, material core.Material) *AABox {
	faces := NewHittableList()

	// Front faces: natural rect orientation already points outward.
	faces.Add(NewAARect(PlaneYZ, max.X, min.Y, max.Y, min.Z, max.Z, material)) // +X
	faces.Add(NewAARect(PlaneXZ, min.Y, min.X, max.X, min.Z, max.Z, material)) // -Y
	faces.Add(NewAARect(PlaneXY, max.Z, min.X, max.X, min.Y, max.Y, material)) // +Z

	// Back faces: flip to point outward.
	faces.Add(NewFlipNormals(NewAARect(PlaneYZ, min.X, min.Y, max.Y, min.Z, max.Z, material))) // -X
	faces.Add(NewFlipNormals(NewAARect(PlaneXZ, max.Y, min.X, max.X, min.Z, max.Z, material))) // +Y
	faces.Add(NewFlipNormals(NewAARect(PlaneXY, min.Z, min.X, max.X, min.Y, max.Y, material))) // -Z

	return &AABox{Min: min, Max: max, faces: faces}
}

func (b *AABox) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (core.HitRecord, bool) {
	return b.faces.Hit(ray, tMin, tMax, rng)
}

func (b *AABox) BoundingBox() core.AABB {
	return core.NewAABB(b.Min, b.Max)
}

func (b *AABox) Pdf(origin, direction core.Vec3) float64 {
	return b.faces.Pdf(origin, direction)
}

func (b *AABox) SampleDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return b.faces.SampleDirection(origin, rng)
}

func (b *AABox) IsInside(p core.Vec3) bool {
	return core.NewAABB(b.Min, b.Max).IsInside(p)
}
