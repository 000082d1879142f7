package output

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	colorspace "github.com/dfrene/spectral-tracer/pkg/color"
	"github.com/dfrene/spectral-tracer/pkg/render"
)

// WritePNG tone-maps buf (auto-exposure via find_exposure, sRGB D65
// conversion, 8-bit quantization) and writes it to filename, creating any
// missing parent directories.
func WritePNG(buf *render.Buffer, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	exposure := colorspace.FindExposure(buf.Pixels)
	if exposure <= 0 {
		exposure = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			xyz := buf.At(x, y)
			toneMapped := xyz.Divide(exposure)
			rgb := colorspace.CIEToRGB(toneMapped)
			img.Set(x, y, color.RGBA{
				R: quantize(rgb.X),
				G: quantize(rgb.Y),
				B: quantize(rgb.Z),
				A: 255,
			})
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

func quantize(c float64) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(c*255 + 0.5)
}
