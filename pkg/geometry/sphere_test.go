package geometry

import (
	"math"
	"testing"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

func TestSphereHitSmallerRootOutsideOrigin(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 550)

	hit, ok := sphere.Hit(ray, 1e-3, 1e6, nil)
	if !ok {
		t.Fatalf("expected hit")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("t = %v, want 4", hit.T)
	}
	if !hit.P.Equals(core.NewVec3(0, 0, 4)) {
		t.Errorf("p = %v, want (0,0,4)", hit.P)
	}
	want := core.NewVec3(0, 0, -1)
	if hit.Normal.Subtract(want).Length() > 1e-6 {
		t.Errorf("normal = %v, want %v", hit.Normal, want)
	}
}

func TestSphereHitLargerRootWhenOriginInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 550)

	hit, ok := sphere.Hit(ray, 1e-3, 1e6, nil)
	if !ok {
		t.Fatalf("expected hit")
	}
	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("t = %v, want 2 (the far root, since the origin is inside the sphere)", hit.T)
	}
}

func TestSphereNormalIsUnitLength(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 1.5, nil)
	ray := core.NewRay(core.NewVec3(1, 2, -10), core.NewVec3(0, 0, 1), 550)
	hit, ok := sphere.Hit(ray, 1e-3, 1e6, nil)
	if !ok {
		t.Fatalf("expected hit")
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-4 {
		t.Errorf("normal length = %v, want ~1", hit.Normal.Length())
	}
}

func TestSphereMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1, nil)
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 0, 1), 550)
	if _, ok := sphere.Hit(ray, 1e-3, 1e6, nil); ok {
		t.Errorf("expected miss for a ray passing well above the sphere")
	}
}

func TestSphereIsInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2, nil)
	if !sphere.IsInside(core.NewVec3(1, 0, 0)) {
		t.Errorf("point at radius 1 should be inside a radius-2 sphere")
	}
	if sphere.IsInside(core.NewVec3(3, 0, 0)) {
		t.Errorf("point at radius 3 should be outside a radius-2 sphere")
	}
}
