package geometry

import (
	"math"
	"testing"

	"github.com/dfrene/spectral-tracer/pkg/core"
	"github.com/dfrene/spectral-tracer/pkg/material"
)

func TestTransformTranslatesHitPointBackToWorldSpace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(0.5))
	moved := NewTransform(sphere, core.NewVec3(10, 0, 0), core.NewVec3(0, 0, 0))

	ray := core.NewRay(core.NewVec3(10, 0, 5), core.NewVec3(0, 0, -1), 550)
	hit, ok := moved.Hit(ray, 0.001, 1e18, nil)
	if !ok {
		t.Fatalf("expected the translated sphere to be hit")
	}
	want := core.NewVec3(10, 0, 1)
	if hit.P.Subtract(want).Length() > 1e-9 {
		t.Errorf("hit point = %v, want %v", hit.P, want)
	}
}

func TestTransformRotationChangesWorldBoundingBox(t *testing.T) {
	box := NewAABox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 4), material.NewLambertian(0.5))
	rotated := NewTransform(box, core.NewVec3(0, 0, 0), core.NewVec3(0, math.Pi/2, 0))

	bbox := rotated.BoundingBox()
	extentX := bbox.Max.X - bbox.Min.X
	extentZ := bbox.Max.Z - bbox.Min.Z
	// A 90 degree yaw swaps the box's X and Z extents (1 and 4).
	if math.Abs(extentX-4) > 1e-6 || math.Abs(extentZ-1) > 1e-6 {
		t.Errorf("rotated bounding box extents = (%v,%v), want roughly (4,1)", extentX, extentZ)
	}
}

func TestTransformMissPassesThrough(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(0.5))
	moved := NewTransform(sphere, core.NewVec3(10, 0, 0), core.NewVec3(0, 0, 0))

	ray := core.NewRay(core.NewVec3(0, 50, 0), core.NewVec3(0, 0, -1), 550)
	if _, ok := moved.Hit(ray, 0.001, 1e18, nil); ok {
		t.Errorf("expected a ray far from the translated sphere to miss")
	}
}
