package material

import (
	"math"
	"testing"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

func TestDiffuseEmissiveOnlyEmitsFromFrontFace(t *testing.T) {
	e := NewDiffuseEmissive(5)
	hit := core.HitRecord{Normal: core.NewVec3(0, 0, 1)}

	front := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 550)
	if v := e.Emitted(front, hit); v != 5 {
		t.Errorf("front-facing emission = %v, want 5", v)
	}

	back := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 550)
	if v := e.Emitted(back, hit); v != 0 {
		t.Errorf("back-facing emission = %v, want 0", v)
	}
}

func TestDiffuseEmissiveNeverScatters(t *testing.T) {
	e := NewDiffuseEmissive(5)
	_, scattered := e.Scatter(core.Ray{}, core.HitRecord{}, nil)
	if scattered {
		t.Errorf("a pure emitter should never scatter")
	}
}

func TestFalloffEmissiveAttenuatesOutsideCone(t *testing.T) {
	f := NewFalloffEmissive(10, 0.1, 0.5, 1)
	hit := core.HitRecord{Normal: core.NewVec3(0, 0, 1)}

	onAxis := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 550)
	if v := f.Emitted(onAxis, hit); math.Abs(v-10) > 1e-9 {
		t.Errorf("on-axis emission = %v, want 10 (full intensity)", v)
	}

	// 80 degrees off axis is well beyond CosThetaOut (~0.5 rad ~ 28.6deg).
	angle := 80.0 * math.Pi / 180
	offAxisDir := core.NewVec3(math.Sin(angle), 0, -math.Cos(angle))
	offAxis := core.NewRay(core.NewVec3(0, 0, 0).Subtract(offAxisDir.Multiply(5)), offAxisDir, 550)
	if v := f.Emitted(offAxis, hit); v != 0 {
		t.Errorf("far off-axis emission = %v, want 0", v)
	}
}
