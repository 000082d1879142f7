package pdf

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

func TestUniformMixtureIsExactMean(t *testing.T) {
	w := core.NewVec3(0, 0, 1)
	a := NewCosine(w)
	b := NewGGX(w, 0.3)
	mix := NewMixture3D(HeuristicUniform, 0, a, b)

	dir := core.NewVec3(0.2, 0.1, 0.9).Normalize()
	want := (a.Value(dir) + b.Value(dir)) / 2
	if got := mix.Value(dir); math.Abs(got-want) > 1e-12 {
		t.Errorf("uniform mixture value = %v, want exactly %v", got, want)
	}
}

func TestPowerMixtureWeightsSumToOne(t *testing.T) {
	w := core.NewVec3(0, 0, 1)
	a := NewCosine(w)
	b := NewGGX(w, 0.3)
	const beta = 2.0

	dir := core.NewVec3(0.1, 0.3, 0.9).Normalize()
	pa := a.Value(dir)
	pb := b.Value(dir)

	powSum := math.Pow(pa, beta) + math.Pow(pb, beta)
	wa := math.Pow(pa, beta) / powSum
	wb := math.Pow(pb, beta) / powSum
	if math.Abs((wa+wb)-1) > 1e-9 {
		t.Fatalf("test setup error: MIS weights should sum to 1, got %v", wa+wb)
	}

	mix := NewMixture3D(HeuristicPower, beta, a, b)
	want := pa*wa + pb*wb
	if got := mix.Value(dir); math.Abs(got-want) > 1e-9 {
		t.Errorf("power mixture value = %v, want %v", got, want)
	}
}

func TestMixtureValueZeroSubsIsZero(t *testing.T) {
	mix := NewMixture3D(HeuristicPower, 2, emptyPdf{}, emptyPdf{})
	if v := mix.Value(core.NewVec3(0, 0, 1)); v != 0 {
		t.Errorf("mixture of zero pdfs = %v, want 0", v)
	}
}

type emptyPdf struct{}

func (emptyPdf) Value(core.Vec3) float64   { return 0 }
func (emptyPdf) Sample(*rand.Rand) core.Vec3 { return core.NewVec3(0, 0, 1) }
