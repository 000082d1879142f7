// Package scene assembles geometry, materials and a camera into the bundle
// the renderer consumes, and provides a couple of fixed literal scenes that
// exercise every material/PDF pairing end to end.
package scene

import (
	"github.com/dfrene/spectral-tracer/pkg/camera"
	"github.com/dfrene/spectral-tracer/pkg/core"
	"github.com/dfrene/spectral-tracer/pkg/geometry"
)

// Scene bundles the world BVH, the attractor list used for importance
// sampling, and the camera a render pass needs.
type Scene struct {
	World      core.Geometry
	Attractors *geometry.HittableList
	Camera     *camera.Camera
}

// build wraps a flat item list into a BVH world and collects the emissive
// members of lights into the scene's attractor list.
func build(items []core.Geometry, lights []core.Geometry, cam *camera.Camera) Scene {
	return Scene{
		World:      geometry.NewBVH(items),
		Attractors: geometry.NewHittableListOf(lights...),
		Camera:     cam,
	}
}
