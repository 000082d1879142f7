package pdf

import (
	"math/rand"
	"sort"
)

// Discrete1D is a tabulated PDF over [Lo,Hi] built from n sample weights,
// stored as a normalized density (area 1) plus the CDF needed for
// inverse-CDF sampling.
type Discrete1D struct {
	Lo, Hi  float64
	n       int
	density []float64 // normalized density of bin i, placed by Value at Lo + i*(Hi-Lo)/n
	cdf     []float64 // cumulative distribution, cdf[i] = sum_{k<=i} weight_k / sum(weight)
}

// NewDiscrete1D builds a tabulated PDF from n sample values on [lo,hi].
// density[i] = samples[i]*n / ((hi-lo) * sum(samples)).
func NewDiscrete1D(samples []float64, lo, hi float64) *Discrete1D {
	n := len(samples)
	total := 0.0
	for _, s := range samples {
		total += s
	}

	width := hi - lo
	density := make([]float64, n)
	cdf := make([]float64, n)
	running := 0.0
	for i, s := range samples {
		if total > 0 {
			density[i] = s * float64(n) / (width * total)
		}
		running += s
		if total > 0 {
			cdf[i] = running / total
		} else {
			cdf[i] = float64(i+1) / float64(n)
		}
	}

	return &Discrete1D{Lo: lo, Hi: hi, n: n, density: density, cdf: cdf}
}

// Value linearly interpolates the tabulated density at x; 0 outside [Lo,Hi].
func (p *Discrete1D) Value(x float64) float64 {
	if x < p.Lo || x > p.Hi {
		return 0
	}
	width := p.Hi - p.Lo
	pos := (x - p.Lo) / width * float64(p.n)
	i := int(pos)
	if i >= p.n {
		i = p.n - 1
	}
	if i < 0 {
		i = 0
	}
	j := i + 1
	if j >= p.n {
		return p.density[i]
	}
	frac := pos - float64(i)
	return p.density[i]*(1-frac) + p.density[j]*frac
}

// Sample draws u~U(0,1), binary-searches the CDF for the first bin >= u,
// and linearly interpolates within that bin before mapping into [Lo,Hi].
func (p *Discrete1D) Sample(rng *rand.Rand) float64 {
	u := rng.Float64()
	i := sort.Search(p.n, func(i int) bool { return p.cdf[i] >= u })
	if i >= p.n {
		i = p.n - 1
	}

	prevCdf := 0.0
	if i > 0 {
		prevCdf = p.cdf[i-1]
	}
	binWidth := p.cdf[i] - prevCdf
	frac := 0.0
	if binWidth > 0 {
		frac = (u - prevCdf) / binWidth
	}

	fractional := (float64(i) + frac) / float64(p.n)
	return p.Lo + fractional*(p.Hi-p.Lo)
}
