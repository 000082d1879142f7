package pdf

import (
	"math"
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// Pdf1D is the float64-valued capability set a Mixture1D sub-PDF
// implements (wavelength sampling).
type Pdf1D interface {
	Value(x float64) float64
	Sample(rng *rand.Rand) float64
}

// Heuristic selects how a Mixture's Value combines its sub-PDFs.
type Heuristic int

const (
	// HeuristicUniform averages the sub-PDFs: value(x) = mean_i p_i(x).
	HeuristicUniform Heuristic = iota
	// HeuristicPower applies the power-heuristic MIS weights with
	// exponent Beta: value(x) = sum_i p_i(x) * w_i(x), w_i = p_i^beta /
	// sum_k p_k^beta.
	HeuristicPower
)

// Mixture1D mixes n Pdf1D sub-distributions (the wavelength sampler's three
// CIE-curve tables).
type Mixture1D struct {
	Subs      []Pdf1D
	Heuristic Heuristic
	Beta      float64
}

// NewUniformMixture1D builds a uniform mixture over subs.
func NewUniformMixture1D(subs ...Pdf1D) *Mixture1D {
	return &Mixture1D{Subs: subs, Heuristic: HeuristicUniform}
}

func (m *Mixture1D) Value(x float64) float64 {
	return mixtureValue(m.Heuristic, m.Beta, len(m.Subs), func(i int) float64 { return m.Subs[i].Value(x) })
}

func (m *Mixture1D) Sample(rng *rand.Rand) float64 {
	i := rng.Intn(len(m.Subs))
	return m.Subs[i].Sample(rng)
}

// Mixture3D mixes n core.ScatterPdf direction PDFs, used to combine the
// attractor PDF and a material's scattering PDF per spec.md section 4.6.
type Mixture3D struct {
	Subs      []core.ScatterPdf
	Heuristic Heuristic
	Beta      float64
}

// NewMixture3D builds a mixture with the given heuristic and beta exponent
// (beta is ignored for HeuristicUniform).
func NewMixture3D(heuristic Heuristic, beta float64, subs ...core.ScatterPdf) *Mixture3D {
	return &Mixture3D{Subs: subs, Heuristic: heuristic, Beta: beta}
}

func (m *Mixture3D) Value(direction core.Vec3) float64 {
	return mixtureValue(m.Heuristic, m.Beta, len(m.Subs), func(i int) float64 { return m.Subs[i].Value(direction) })
}

// Sample picks a sub-PDF uniformly at random and delegates: per spec.md
// section 4.3, only Value applies the power-heuristic MIS weight; the
// sampling strategy stays uniform among sub-PDFs regardless of heuristic.
func (m *Mixture3D) Sample(rng *rand.Rand) core.Vec3 {
	i := rng.Intn(len(m.Subs))
	return m.Subs[i].Sample(rng)
}

// mixtureValue implements the shared Uniform/Power value formula given a
// callback that evaluates the i-th sub-PDF at the query point.
func mixtureValue(h Heuristic, beta float64, n int, subValue func(i int) float64) float64 {
	if n == 0 {
		return 0
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = subValue(i)
	}

	if h == HeuristicUniform {
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum / float64(n)
	}

	// HeuristicPower: weight_i = p_i^beta / sum_k p_k^beta; result = sum_i
	// p_i * weight_i.
	powSum := 0.0
	pows := make([]float64, n)
	for i, v := range values {
		pw := 0.0
		if v > 0 {
			pw = math.Pow(v, beta)
		}
		pows[i] = pw
		powSum += pw
	}
	if powSum == 0 {
		return 0
	}
	result := 0.0
	for i, v := range values {
		result += v * (pows[i] / powSum)
	}
	return result
}
