package camera

import (
	"math"
	"math/rand"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// ApertureShape selects the lens-sampling pattern used for depth of field.
type ApertureShape int

const (
	ApertureCircle ApertureShape = iota
	ApertureHexagon
)

// Camera is a thin-lens camera: origin/u/v/w form the camera's orthonormal
// basis, lowerLeftCorner/horizontal/vertical describe the image plane at
// the focus distance, and lensRadius/aperture control depth of field.
// Each ray additionally carries a wavelength drawn from wavelengthSampler.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	aperture        ApertureShape
	wavelengthSampler *WavelengthSampler
}

// NewCamera builds a thin-lens camera looking from lookFrom to lookAt with
// up vector vup, vertical field of view vfov (degrees), the given image
// aspect ratio, lens aperture diameter, and focus distance.
func NewCamera(lookFrom, lookAt, vup core.Vec3, vfov, aspectRatio, aperture, focusDist float64, shape ApertureShape) *Camera {
	theta := vfov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := aspectRatio * viewportHeight

	w := lookFrom.Subtract(lookAt).Normalize()
	u := vup.Cross(w).Normalize()
	v := w.Cross(u)

	origin := lookFrom
	horizontal := u.Multiply(viewportWidth * focusDist)
	vertical := v.Multiply(viewportHeight * focusDist)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		origin:            origin,
		lowerLeftCorner:   lowerLeftCorner,
		horizontal:        horizontal,
		vertical:          vertical,
		u:                 u,
		v:                 v,
		w:                 w,
		lensRadius:        aperture / 2,
		aperture:          shape,
		wavelengthSampler: NewWavelengthSampler(),
	}
}

// GetRay generates a ray for normalized image coordinates (s,t) in [0,1]^2,
// sampling the lens for depth of field and the wavelength sampler for the
// ray's single carried wavelength. Returns the ray and the PDF of the
// sampled wavelength.
func (c *Camera) GetRay(s, t float64, rng *rand.Rand) (core.Ray, float64) {
	var rd core.Vec2
	if c.lensRadius > 0 {
		switch c.aperture {
		case ApertureHexagon:
			rd = core.RandomUnitHexagon(2*c.lensRadius, rng)
		default:
			rd = core.RandomUnitDisk(rng).Multiply(c.lensRadius)
		}
	}

	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	rayOrigin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	wavelength, pdfLambda := c.wavelengthSampler.SampleClamped(rng, DefaultMinPdf)
	return core.NewRay(rayOrigin, direction, wavelength), pdfLambda
}
