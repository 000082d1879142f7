package core

import "math/rand"

// Logger is a small structured-logging capability set so pkg/core and its
// dependents never import a concrete logging library directly.
type Logger interface {
	Printf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// HitRecord describes a ray-surface intersection. Normal always points
// outward from the geometry and has unit length; t is only meaningful inside
// the (tMin, tMax) interval that produced the hit.
type HitRecord struct {
	T        float64
	P        Vec3
	Normal   Vec3
	Material Material
	UV       Vec2
}

// Geometry is the capability set every primitive implements: hit testing, a
// bounding box, and (for emissive primitives used as attractors) a
// solid-angle direction PDF and sampler. Primitives that are never used as
// attractors may return a Pdf of 0 and a placeholder SampleDirection.
type Geometry interface {
	// Hit takes an *rand.Rand because ConstantMedium needs a free-flight
	// sample at intersection time; every other primitive ignores it.
	// Threading it explicitly keeps randomness per-call rather than relying
	// on a mutable global (see spec.md section 5's "no global RNG" rule).
	Hit(ray Ray, tMin, tMax float64, rng *rand.Rand) (HitRecord, bool)
	BoundingBox() AABB

	// Pdf returns the solid-angle probability density, at origin, of
	// sampling a ray toward this geometry that arrives along direction.
	// Geometry that is never used as an attractor may return 0.
	Pdf(origin, direction Vec3) float64

	// SampleDirection returns a direction from origin toward a random point
	// on the geometry, distributed according to Pdf.
	SampleDirection(origin Vec3, rng *rand.Rand) Vec3

	// IsInside reports whether p lies within the solid interior of the
	// geometry. Wrappers and lists delegate to their members; no material
	// or medium calls it. Geometry with no meaningful interior returns false.
	IsInside(p Vec3) bool
}

// ScatterKind distinguishes the two variants of ScatterRecord.
type ScatterKind int

const (
	// ScatterSpecular carries a single deterministic outgoing ray (mirror
	// reflection, dielectric reflect/refract). There is no PDF: the estimator
	// recurses along Ray with weight Attenuation.
	ScatterSpecular ScatterKind = iota
	// ScatterDiffuse carries a PDF over outgoing directions sampled jointly
	// with the attractor mixture by the integrator.
	ScatterDiffuse
)

// ScatterPdf is the Pdf[Vec3] a Diffuse ScatterRecord exposes to the
// integrator, which mixes it with the attractor PDF. Kept as an interface
// (rather than the generic Pdf[Vec3] alias) so material code does not need
// to import pkg/pdf, avoiding an import cycle between core and pdf.
type ScatterPdf interface {
	Value(direction Vec3) float64
	Sample(rng *rand.Rand) Vec3
}

// ScatterRecord is the tagged-variant result of Material.Scatter.
type ScatterRecord struct {
	Kind        ScatterKind
	Attenuation float64
	Ray         Ray        // valid when Kind == ScatterSpecular
	Pdf         ScatterPdf // valid when Kind == ScatterDiffuse
}

// Material is the capability set every material implements.
type Material interface {
	// Scatter returns the outgoing scatter record for a ray hitting this
	// material, or false if the material absorbs (no further bounce).
	Scatter(rayIn Ray, hit HitRecord, rng *rand.Rand) (ScatterRecord, bool)

	// ScatteringPdf evaluates the material's own BRDF-consistent density for
	// a particular scattered direction, used to weight indirect radiance.
	ScatteringPdf(scattered Ray, hit HitRecord) float64

	// Emitted returns the spectral radiance this material emits at
	// rayIn.Wavelength given the incoming ray and hit record.
	Emitted(rayIn Ray, hit HitRecord) float64
}
