package geometry

import (
	"math"
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// Sphere is a solid ball of radius Radius centered at Center. It doubles as
// an attractor: Pdf/SampleDirection treat it as a solid-angle light source
// seen through the cone it subtends at the query origin.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a sphere.
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// Hit solves the standard ray-sphere quadratic and reports the smaller root
// in range, falling back to the larger root for rays starting inside.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return core.HitRecord{}, false
		}
	}

	p := ray.At(root)
	outwardNormal := p.Subtract(s.Center).Multiply(1.0 / s.Radius)

	u := 1 - (math.Atan2(outwardNormal.Z, outwardNormal.X)+math.Pi)/(2*math.Pi)
	v := (math.Asin(clamp(outwardNormal.Y, -1, 1)) + math.Pi/2) / math.Pi

	hit := core.HitRecord{
		T:        root,
		P:        p,
		Normal:   outwardNormal,
		Material: s.Material,
		UV:       core.NewVec2(u, v),
	}
	return hit, true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// BoundingBox returns the sphere's axis-aligned bounding box.
func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// Pdf returns the solid-angle PDF of sampling this sphere as seen from
// origin along direction, treating it as a uniformly-lit cone source.
func (s *Sphere) Pdf(origin, direction core.Vec3) float64 {
	probeRay := core.NewRay(origin, direction, 0)
	if _, hit := s.Hit(probeRay, 1e-3, math.Inf(1), nil); !hit {
		return 0
	}

	distSq := s.Center.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distSq))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	if solidAngle <= 0 {
		return 0
	}
	return 1 / solidAngle
}

// SampleDirection returns a direction from origin toward a uniformly chosen
// point on the cap the sphere subtends at origin.
func (s *Sphere) SampleDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	toCenter := s.Center.Subtract(origin)
	distSq := toCenter.LengthSquared()
	w := toCenter.Normalize()

	if distSq <= s.Radius*s.Radius {
		// Origin is inside the sphere: fall back to a uniform direction over
		// the hemisphere facing the center.
		z := rng.Float64()
		sinTheta := math.Sqrt(math.Max(0, 1-z*z))
		phi := 2 * math.Pi * rng.Float64()
		local := core.NewVec3(math.Cos(phi)*sinTheta, math.Sin(phi)*sinTheta, z)
		return core.ONBLocal(w, local)
	}

	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distSq))
	r1 := rng.Float64()
	r2 := rng.Float64()
	z := 1 + r2*(cosThetaMax-1)
	sinTheta := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * r1
	local := core.NewVec3(math.Cos(phi)*sinTheta, math.Sin(phi)*sinTheta, z)
	return core.ONBLocal(w, local)
}

// IsInside reports whether p lies within the solid sphere.
func (s *Sphere) IsInside(p core.Vec3) bool {
	return p.Subtract(s.Center).LengthSquared() <= s.Radius*s.Radius
}
