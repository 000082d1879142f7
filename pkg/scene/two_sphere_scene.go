package scene

import (
	"github.com/dfrene/spectral-tracer/pkg/camera"
	"github.com/dfrene/spectral-tracer/pkg/core"
	"github.com/dfrene/spectral-tracer/pkg/geometry"
	"github.com/dfrene/spectral-tracer/pkg/material"
)

// NewTwoSphereScene builds the minimal direct-lighting scene used to check
// chromaticity convergence: two uniform-reflectance Lambertian spheres
// beside one ideal blackbody light sphere at T=5000K.
func NewTwoSphereScene(aspectRatio float64) Scene {
	ground := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(0.5))
	sphere := geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewLambertian(0.5))
	light := geometry.NewSphere(core.NewVec3(3, 3, 0), 1, material.NewBlackbody(5000, 10))

	lights := []core.Geometry{light}
	items := []core.Geometry{ground, sphere, light}

	lookFrom := core.NewVec3(0, 2, 8)
	lookAt := core.NewVec3(0, 1, 0)
	up := core.NewVec3(0, 1, 0)
	cam := camera.NewCamera(lookFrom, lookAt, up, 35, aspectRatio, 0, lookFrom.Subtract(lookAt).Length(), camera.ApertureCircle)

	return build(items, lights, cam)
}
