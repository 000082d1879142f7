package material

import (
	"math"
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// Sf10Sellmeier holds the 3-term Sellmeier coefficients for SF10 dense
// flint glass (wavelength in micrometers), from the Schott/refractiveindex
// catalog. At 589.3nm this yields an index within 1e-2 of the published
// 1.728 literature value (spec.md scenario S4).
const (
	sf10B1 = 1.62153902
	sf10B2 = 0.256287842
	sf10B3 = 1.64447552
	sf10C1 = 0.0122241457
	sf10C2 = 0.0595736775
	sf10C3 = 147.468793
)

// sellmeierIndex evaluates the SF10 Sellmeier equation at wavelengthNm.
func sellmeierIndex(wavelengthNm float64) float64 {
	lambdaUm := wavelengthNm / 1000.0
	l2 := lambdaUm * lambdaUm
	n2 := 1.0 +
		(sf10B1*l2)/(l2-sf10C1) +
		(sf10B2*l2)/(l2-sf10C2) +
		(sf10B3*l2)/(l2-sf10C3)
	return math.Sqrt(n2)
}

// Sf10Glass is a wavelength-dispersive dielectric (SF10 dense flint glass).
// Scatter always returns a specular ray: reflected or refracted, chosen
// stochastically by Schlick's Fresnel approximation.
type Sf10Glass struct{}

// NewSf10Glass creates an SF10 dielectric material.
func NewSf10Glass() *Sf10Glass {
	return &Sf10Glass{}
}

func refract(v, n core.Vec3, etaRatio float64) core.Vec3 {
	cosTheta := math.Min(v.Negate().Dot(n), 1.0)
	rOutPerp := v.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

func schlickReflectance(cosine, etaRatio float64) float64 {
	r0 := (1 - etaRatio) / (1 + etaRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

func (d *Sf10Glass) Scatter(rayIn core.Ray, hit core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	ior := sellmeierIndex(rayIn.Wavelength)
	unitDir := rayIn.Direction.Normalize()

	normal := hit.Normal
	cosThetaI := unitDir.Negate().Dot(normal)

	var etaRatio float64 // eta_incident / eta_transmitted
	if cosThetaI > 0 {
		// Entering the glass from outside.
		etaRatio = 1.0 / ior
	} else {
		// Exiting the glass: flip the normal to face the incoming ray.
		normal = normal.Negate()
		cosThetaI = -cosThetaI
		etaRatio = ior
	}

	sinThetaI := math.Sqrt(math.Max(0, 1-cosThetaI*cosThetaI))
	cannotRefract := etaRatio*sinThetaI > 1.0

	var outDir core.Vec3
	if cannotRefract || schlickReflectance(cosThetaI, etaRatio) > rng.Float64() {
		outDir = reflect(unitDir, normal)
	} else {
		outDir = refract(unitDir, normal, etaRatio)
	}

	return core.ScatterRecord{
		Kind:        core.ScatterSpecular,
		Attenuation: 1,
		Ray:         core.NewRay(hit.P, outDir, rayIn.Wavelength),
	}, true
}

func (d *Sf10Glass) ScatteringPdf(scattered core.Ray, hit core.HitRecord) float64 {
	return 0
}

func (d *Sf10Glass) Emitted(rayIn core.Ray, hit core.HitRecord) float64 {
	return 0
}
