// Package render drives the path integrator across an image: for every
// pixel it draws `samples` camera rays, averages their tristimulus
// contributions with a streaming mean, and parallelizes the work across
// scanlines with a worker pool.
package render

import (
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/alitto/pond/v2"

	"github.com/dfrene/spectral-tracer/pkg/camera"
	"github.com/dfrene/spectral-tracer/pkg/core"
	"github.com/dfrene/spectral-tracer/pkg/integrator"
)

// Buffer is a width*height CIE XYZ tristimulus image, row-major with
// (0,0) at the top-left.
type Buffer struct {
	Width, Height int
	Pixels        []core.Vec3
}

// At returns the pixel at (x,y).
func (b *Buffer) At(x, y int) core.Vec3 {
	return b.Pixels[y*b.Width+x]
}

// Config controls a render pass.
type Config struct {
	Width, Height int
	Samples       int
	MaxDepth      int
	Workers       int // 0 means runtime.NumCPU()
	Seed          int64
}

// Scene bundles the geometry and camera a render pass needs; it mirrors
// the scene bundle built by pkg/scene.
type Scene struct {
	World      core.Geometry
	Attractors core.Geometry
	Camera     *camera.Camera
}

// Render runs a full progressive render of scene at the given config and
// returns the completed tristimulus buffer. Each row is seeded with its
// own *rand.Rand so rows render independently with no shared mutable
// randomness, and rows are distributed across a pond worker pool sized to
// cfg.Workers (or runtime.NumCPU() when unset).
func Render(scene Scene, cfg Config, logger core.Logger) *Buffer {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	integ := integrator.NewPathIntegrator(scene.World, scene.Attractors, cfg.MaxDepth, logger)
	buf := &Buffer{Width: cfg.Width, Height: cfg.Height, Pixels: make([]core.Vec3, cfg.Width*cfg.Height)}

	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	var wg sync.WaitGroup
	start := time.Now()

	for y := 0; y < cfg.Height; y++ {
		y := y
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(cfg.Seed + int64(y)))
			renderRow(buf, scene.Camera, integ, y, cfg, rng)
		})
	}
	wg.Wait()

	if logger != nil {
		logger.Infof("rendered %dx%d at %d spp in %s", cfg.Width, cfg.Height, cfg.Samples, time.Since(start))
	}
	return buf
}

// renderRow fills scanline y of buf with cfg.Samples camera rays per pixel,
// combined via the streaming-mean update buf += (tri-buf)/(n+1).
func renderRow(buf *Buffer, cam *camera.Camera, integ *integrator.PathIntegrator, y int, cfg Config, rng *rand.Rand) {
	for x := 0; x < cfg.Width; x++ {
		var mean core.Vec3
		for n := 0; n < cfg.Samples; n++ {
			u := (float64(x) + rng.Float64()) / float64(cfg.Width)
			v := (float64(cfg.Height-y) - rng.Float64()) / float64(cfg.Height)

			ray, pdfLambda := cam.GetRay(u, v, rng)
			if pdfLambda <= 0 {
				continue
			}
			tri := integ.Estimate(ray, rng).Divide(pdfLambda)
			mean = mean.Add(tri.Subtract(mean).Divide(float64(n + 1)))
		}
		buf.Pixels[y*cfg.Width+x] = mean
	}
}
