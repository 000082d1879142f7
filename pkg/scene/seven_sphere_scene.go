package scene

import (
	"github.com/dfrene/spectral-tracer/pkg/camera"
	"github.com/dfrene/spectral-tracer/pkg/core"
	"github.com/dfrene/spectral-tracer/pkg/geometry"
	"github.com/dfrene/spectral-tracer/pkg/material"
)

// NewSevenSphereScene builds a row of seven spheres spanning every
// material/PDF pairing the renderer supports (flat and spectral
// Lambertian, rough and near-mirror GGX, Sf10 dense-flint glass, a coated
// blackbody, and a constant-medium fog ball), lit by three ideal blackbody
// spheres at increasing color temperature, over a large Lambertian ground
// plane, viewed by a wide-aperture thin-lens camera.
func NewSevenSphereScene(aspectRatio float64) Scene {
	ground := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(0.5))

	spheres := []core.Geometry{
		ground,
		geometry.NewSphere(core.NewVec3(-6, 1, 0), 1, material.NewLambertian(0.6)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewSpectralLambertian(0.9, 610, 40)),
		geometry.NewSphere(core.NewVec3(-2, 1, 0), 1, material.NewGGX(0.8, 0.35)),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewGGX(0.95, 0.02)),
		geometry.NewSphere(core.NewVec3(2, 1, 0), 1, material.NewSf10Glass()),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewBlackbodyCoated(3200, 4, 0.4)),
	}

	fogBoundary := geometry.NewSphere(core.NewVec3(6, 1, 0), 1, material.NewIsotropic(0.9))
	fog := geometry.NewConstantMedium(fogBoundary, 0.3, material.NewIsotropic(0.9))
	spheres = append(spheres, fog)

	lights := []core.Geometry{
		geometry.NewSphere(core.NewVec3(-4, 6, -3), 1.2, material.NewBlackbody(3000, 8)),
		geometry.NewSphere(core.NewVec3(0, 7, -3), 1.2, material.NewBlackbody(5500, 10)),
		geometry.NewSphere(core.NewVec3(4, 6, -3), 1.2, material.NewBlackbody(9000, 8)),
	}

	items := append(append([]core.Geometry{}, spheres...), lights...)

	lookFrom := core.NewVec3(0, 3, 14)
	lookAt := core.NewVec3(0, 1, 0)
	up := core.NewVec3(0, 1, 0)
	cam := camera.NewCamera(lookFrom, lookAt, up, 30, aspectRatio, 0.1, lookFrom.Subtract(lookAt).Length(), camera.ApertureHexagon)

	return build(items, lights, cam)
}
