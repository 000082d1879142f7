package output

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/dfrene/spectral-tracer/pkg/core"
	"github.com/dfrene/spectral-tracer/pkg/render"
)

func testBuffer() *render.Buffer {
	buf := &render.Buffer{Width: 2, Height: 2, Pixels: make([]core.Vec3, 4)}
	buf.Pixels[0] = core.NewVec3(0.2, 0.2, 0.2)
	buf.Pixels[1] = core.NewVec3(0.4, 0.4, 0.4)
	buf.Pixels[2] = core.NewVec3(0.6, 0.6, 0.6)
	buf.Pixels[3] = core.NewVec3(0, 0, 0)
	return buf
}

func TestWritePNGProducesADecodableImageOfTheRightSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.png")
	if err := WritePNG(testBuffer(), path); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open written file: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decode written png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 2 {
		t.Errorf("decoded image size = %dx%d, want 2x2", bounds.Dx(), bounds.Dy())
	}
}

func TestQuantizeClampsToByteRange(t *testing.T) {
	cases := []struct {
		in   float64
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{1, 255},
		{2, 255},
	}
	for _, c := range cases {
		if got := quantize(c.in); got != c.want {
			t.Errorf("quantize(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}
