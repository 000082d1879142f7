// Package integrator implements the spectral path-tracing estimator: for
// each camera ray it recursively estimates the CIE XYZ tristimulus radiance
// arriving along that ray, combining a material's own BRDF sampling with
// direct attractor sampling via multiple importance sampling.
package integrator

import (
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/color"
	"github.com/dfrene/spectral-tracer/pkg/core"
	"github.com/dfrene/spectral-tracer/pkg/pdf"
)

// MaxDepth is the fixed recursion cap applied to every path; there is no
// Russian-roulette termination.
const MaxDepth = 50

// MISBeta is the power-heuristic exponent used to mix the attractor PDF
// with a diffuse material's own scattering PDF.
const MISBeta = 2.0

// hitEpsilon is the minimum ray parameter accepted by a hit test, pushing
// the search origin past the surface it started on.
const hitEpsilon = 0.001

// infinity stands in for an unbounded tMax on the hot path.
const infinity = 1e18

// PathIntegrator estimates tristimulus radiance along camera rays by
// unidirectional path tracing with MIS between BRDF and attractor
// sampling.
type PathIntegrator struct {
	World      core.Geometry
	Attractors core.Geometry
	MaxDepth   int
	Logger     core.Logger
}

// NewPathIntegrator builds an integrator over world (the full scene BVH)
// and attractors (the emissive-primitive aggregate used for importance
// sampling). If maxDepth is 0, MaxDepth is used.
func NewPathIntegrator(world, attractors core.Geometry, maxDepth int, logger core.Logger) *PathIntegrator {
	if maxDepth == 0 {
		maxDepth = MaxDepth
	}
	return &PathIntegrator{World: world, Attractors: attractors, MaxDepth: maxDepth, Logger: logger}
}

// Estimate returns the tristimulus radiance arriving along ray, recursing
// up to the integrator's depth cap. Any NaN or infinite component in the
// result is sanitized to 0.
func (pi *PathIntegrator) Estimate(ray core.Ray, rng *rand.Rand) core.Vec3 {
	return pi.estimate(ray, pi.MaxDepth, rng).Sanitize()
}

func (pi *PathIntegrator) estimate(ray core.Ray, depth int, rng *rand.Rand) core.Vec3 {
	if depth == 0 {
		return core.Vec3{}
	}

	hit, ok := pi.World.Hit(ray, hitEpsilon, infinity, rng)
	if !ok {
		return core.Vec3{}
	}

	emitted := color.GetTristimulus(ray.Wavelength).Multiply(hit.Material.Emitted(ray, hit))

	scatter, scattered := hit.Material.Scatter(ray, hit, rng)
	if !scattered {
		return emitted
	}

	if scatter.Kind == core.ScatterSpecular {
		incoming := pi.estimate(scatter.Ray, depth-1, rng)
		return incoming.Multiply(scatter.Attenuation)
	}

	return emitted.Add(pi.sampleMixture(ray, hit, scatter, depth, rng))
}

// sampleMixture implements the Diffuse branch of estimate: it mixes the
// attractor PDF (importance-sampling the emissive geometry from hit.P) with
// the material's own scattering PDF via the power heuristic, draws a
// direction from the mixture, and recurses along it.
func (pi *PathIntegrator) sampleMixture(ray core.Ray, hit core.HitRecord, scatter core.ScatterRecord, depth int, rng *rand.Rand) core.Vec3 {
	attractorPdf := pdf.NewGeometry(hit.P, pi.Attractors)
	mix := pdf.NewMixture3D(pdf.HeuristicPower, MISBeta, attractorPdf, scatter.Pdf)

	direction := mix.Sample(rng)
	p := mix.Value(direction)
	if p <= 0 {
		return core.Vec3{}
	}

	scatteredRay := core.NewRay(hit.P, direction, ray.Wavelength)
	incoming := pi.estimate(scatteredRay, depth-1, rng)
	brdfPdf := hit.Material.ScatteringPdf(scatteredRay, hit)

	weight := core.SafeDivide(scatter.Attenuation*brdfPdf, p)
	return incoming.Multiply(weight)
}
