package scene

import (
	"math"

	"github.com/dfrene/spectral-tracer/pkg/camera"
	"github.com/dfrene/spectral-tracer/pkg/core"
	"github.com/dfrene/spectral-tracer/pkg/geometry"
	"github.com/dfrene/spectral-tracer/pkg/material"
)

// NewCornellBoxScene builds a classic five-wall Cornell box lit by a single
// ceiling panel light, with a rotated Sf10 glass box and a GGX sphere
// standing in for the usual tall/short block pair. It exercises AARect as
// wall/light panels, FlipNormals on the inward-facing walls, AABox for the
// solid block, and Transform for the block's rotation, none of which the
// sphere-only scenes reach.
func NewCornellBoxScene(aspectRatio float64) Scene {
	red := material.NewLambertian(0.65)
	white := material.NewLambertian(0.73)
	green := material.NewLambertian(0.65)

	const size = 555.0

	left := geometry.NewFlipNormals(geometry.NewAARect(geometry.PlaneYZ, size, 0, size, 0, size, green))
	right := geometry.NewAARect(geometry.PlaneYZ, 0, 0, size, 0, size, red)
	floor := geometry.NewFlipNormals(geometry.NewAARect(geometry.PlaneXZ, 0, 0, size, 0, size, white))
	ceiling := geometry.NewAARect(geometry.PlaneXZ, size, 0, size, 0, size, white)
	back := geometry.NewFlipNormals(geometry.NewAARect(geometry.PlaneXY, size, 0, size, 0, size, white))

	light := geometry.NewAARect(geometry.PlaneXZ, size-1, 213, 343, 227, 332, material.NewDiffuseEmissive(15))

	glassBox := geometry.NewTransform(
		geometry.NewAABox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), material.NewSf10Glass()),
		core.NewVec3(130, 0, 65),
		core.NewVec3(0, 18*math.Pi/180, 0),
	)
	metalSphere := geometry.NewSphere(core.NewVec3(370, 90, 350), 90, material.NewGGX(0.9, 0.05))

	lights := []core.Geometry{light}
	items := []core.Geometry{left, right, floor, ceiling, back, light, glassBox, metalSphere}

	lookFrom := core.NewVec3(278, 278, -800)
	lookAt := core.NewVec3(278, 278, 0)
	up := core.NewVec3(0, 1, 0)
	cam := camera.NewCamera(lookFrom, lookAt, up, 40, aspectRatio, 0, lookFrom.Subtract(lookAt).Length(), camera.ApertureCircle)

	return build(items, lights, cam)
}
