package material

import (
	"testing"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

func TestIdealBlackbodyNeverScatters(t *testing.T) {
	b := NewBlackbody(5000, 10)
	_, scattered := b.Scatter(core.Ray{}, core.HitRecord{}, nil)
	if scattered {
		t.Errorf("an ideal blackbody radiator should never scatter")
	}
}

func TestCoatedBlackbodyScattersLikeItsCoat(t *testing.T) {
	b := NewBlackbodyCoated(3200, 4, 0.4)
	hit := core.HitRecord{P: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 550)

	scatter, ok := b.Scatter(rayIn, hit, nil)
	if !ok {
		t.Fatalf("expected the coated blackbody to scatter diffusely")
	}
	if scatter.Attenuation != 0.4 {
		t.Errorf("coated blackbody attenuation = %v, want 0.4 (the coat reflectance)", scatter.Attenuation)
	}
}

func TestBlackbodyEmitsOnlyFromFrontFace(t *testing.T) {
	b := NewBlackbody(5000, 10)
	hit := core.HitRecord{Normal: core.NewVec3(0, 0, 1)}

	front := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 550)
	if v := b.Emitted(front, hit); v <= 0 {
		t.Errorf("front-facing emission = %v, want > 0", v)
	}

	back := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 550)
	if v := b.Emitted(back, hit); v != 0 {
		t.Errorf("back-facing emission = %v, want 0", v)
	}
}
