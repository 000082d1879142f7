package geometry

import (
	"testing"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

func spheresAlongX(n int) []core.Geometry {
	items := make([]core.Geometry, n)
	for i := 0; i < n; i++ {
		items[i] = NewSphere(core.NewVec3(float64(i)*3, 0, 0), 1, nil)
	}
	return items
}

func TestBVHFindsClosestHitAmongManySpheres(t *testing.T) {
	world := NewBVH(spheresAlongX(20))
	ray := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0), 550)

	hit, ok := world.Hit(ray, 1e-3, 1e6, nil)
	if !ok {
		t.Fatalf("expected a hit")
	}
	// The closest sphere is centered at x=0, radius 1, so the near
	// intersection point should be x=-1.
	if hit.P.X > -0.9 || hit.P.X < -1.1 {
		t.Errorf("closest hit point x=%v, want near -1", hit.P.X)
	}
}

func TestBVHMissesWhenNothingInPath(t *testing.T) {
	world := NewBVH(spheresAlongX(5))
	ray := core.NewRay(core.NewVec3(0, 50, 0), core.NewVec3(1, 0, 0), 550)
	if _, ok := world.Hit(ray, 1e-3, 1e6, nil); ok {
		t.Errorf("expected miss for a ray well above every sphere")
	}
}

func TestBVHSingleItemIsReturnedUnwrapped(t *testing.T) {
	items := spheresAlongX(1)
	world := NewBVH(items)
	if _, ok := world.(*Sphere); !ok {
		t.Errorf("a single-item BVH should return the item itself, got %T", world)
	}
}

func TestNewBVHPanicsOnEmptyInput(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected NewBVH([]) to panic")
		}
	}()
	NewBVH(nil)
}
