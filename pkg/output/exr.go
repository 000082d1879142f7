package output

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"

	"github.com/dfrene/spectral-tracer/pkg/render"
)

// WriteEXR writes buf as a single-layer, RLE-compressed, scanline OpenEXR
// file with three f32 channels R=X, G=Y, B=Z and the fixed chromaticities
// R=(1,0) G=(0,1) B=(0,0) white=(1/3,1/3). There is no third-party Go EXR
// encoder in the reference stack this module is grounded on, so the
// container is assembled by hand from the OpenEXR file-format
// specification (magic number, attribute header, scanline offset table,
// PackBits-style RLE blocks after a byte reorder and byte-delta predictor
// step).
func WriteEXR(buf *render.Buffer, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	var header bytes.Buffer
	binary.Write(&header, binary.LittleEndian, uint32(0x01312f76)) // magic number
	binary.Write(&header, binary.LittleEndian, uint32(2))          // version 2, no flags

	writeChannelsAttr(&header)
	writeCompressionAttr(&header)
	writeBox2iAttr(&header, "dataWindow", 0, 0, buf.Width-1, buf.Height-1)
	writeBox2iAttr(&header, "displayWindow", 0, 0, buf.Width-1, buf.Height-1)
	writeLineOrderAttr(&header)
	writeFloatAttr(&header, "pixelAspectRatio", 1)
	writeV2fAttr(&header, "screenWindowCenter", 0, 0)
	writeFloatAttr(&header, "screenWindowWidth", 1)
	writeChromaticitiesAttr(&header)
	header.WriteByte(0) // end of header

	headerLen := header.Len()
	offsetTableLen := 8 * buf.Height
	scanlineStart := int64(headerLen + offsetTableLen)

	offsets := make([]int64, buf.Height)
	var scanlines bytes.Buffer
	for y := 0; y < buf.Height; y++ {
		offsets[y] = scanlineStart + int64(scanlines.Len())
		writeScanline(&scanlines, buf, y)
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.Write(header.Bytes()); err != nil {
		return err
	}
	offsetBuf := make([]byte, 8)
	for _, off := range offsets {
		binary.LittleEndian.PutUint64(offsetBuf, uint64(off))
		if _, err := file.Write(offsetBuf); err != nil {
			return err
		}
	}
	_, err = file.Write(scanlines.Bytes())
	return err
}

func writeString(buf *bytes.Buffer, s string) {
	buf.WriteString(s)
	buf.WriteByte(0)
}

func writeAttrHeader(buf *bytes.Buffer, name, kind string, size int) {
	writeString(buf, name)
	writeString(buf, kind)
	binary.Write(buf, binary.LittleEndian, uint32(size))
}

func writeChannelsAttr(buf *bytes.Buffer) {
	// Channels must be listed in alphabetical order: B, G, R.
	var body bytes.Buffer
	for _, ch := range []string{"B", "G", "R"} {
		writeString(&body, ch)
		binary.Write(&body, binary.LittleEndian, uint32(2)) // pixel type: FLOAT
		body.WriteByte(0)                                   // pLinear
		body.Write([]byte{0, 0, 0})                         // reserved
		binary.Write(&body, binary.LittleEndian, uint32(1)) // xSampling
		binary.Write(&body, binary.LittleEndian, uint32(1)) // ySampling
	}
	body.WriteByte(0) // terminator

	writeAttrHeader(buf, "channels", "chlist", body.Len())
	buf.Write(body.Bytes())
}

func writeCompressionAttr(buf *bytes.Buffer) {
	writeAttrHeader(buf, "compression", "compression", 1)
	buf.WriteByte(1) // RLE
}

func writeBox2iAttr(buf *bytes.Buffer, name string, xMin, yMin, xMax, yMax int) {
	writeAttrHeader(buf, name, "box2i", 16)
	binary.Write(buf, binary.LittleEndian, int32(xMin))
	binary.Write(buf, binary.LittleEndian, int32(yMin))
	binary.Write(buf, binary.LittleEndian, int32(xMax))
	binary.Write(buf, binary.LittleEndian, int32(yMax))
}

func writeLineOrderAttr(buf *bytes.Buffer) {
	writeAttrHeader(buf, "lineOrder", "lineOrder", 1)
	buf.WriteByte(0) // INCREASING_Y
}

func writeFloatAttr(buf *bytes.Buffer, name string, v float32) {
	writeAttrHeader(buf, name, "float", 4)
	binary.Write(buf, binary.LittleEndian, v)
}

func writeV2fAttr(buf *bytes.Buffer, name string, x, y float32) {
	writeAttrHeader(buf, name, "v2f", 8)
	binary.Write(buf, binary.LittleEndian, x)
	binary.Write(buf, binary.LittleEndian, y)
}

func writeChromaticitiesAttr(buf *bytes.Buffer) {
	writeAttrHeader(buf, "chromaticities", "chromaticities", 32)
	values := []float32{1, 0, 0, 1, 0, 0, 1.0 / 3.0, 1.0 / 3.0}
	for _, v := range values {
		binary.Write(buf, binary.LittleEndian, v)
	}
}

// writeScanline appends one RLE-compressed scanline block (y, size, data)
// for row y of buf to out. Pixel data is packed per-channel in alphabetical
// order (B, G, R, holding Z, Y, X), each channel as width little-endian
// float32 values, before compression.
func writeScanline(out *bytes.Buffer, buf *render.Buffer, y int) {
	raw := make([]byte, 0, buf.Width*3*4)
	raw = appendChannelRow(raw, buf, y, 'B')
	raw = appendChannelRow(raw, buf, y, 'G')
	raw = appendChannelRow(raw, buf, y, 'R')

	compressed := rleCompress(raw)

	binary.Write(out, binary.LittleEndian, int32(y))
	binary.Write(out, binary.LittleEndian, int32(len(compressed)))
	out.Write(compressed)
}

func appendChannelRow(raw []byte, buf *render.Buffer, y int, channel byte) []byte {
	var tmp [4]byte
	for x := 0; x < buf.Width; x++ {
		px := buf.At(x, y)
		var v float32
		switch channel {
		case 'R':
			v = float32(px.X)
		case 'G':
			v = float32(px.Y)
		case 'B':
			v = float32(px.Z)
		}
		binary.LittleEndian.PutUint32(tmp[:], math.Float32bits(v))
		raw = append(raw, tmp[:]...)
	}
	return raw
}

// rleCompress applies OpenEXR's scanline compression pipeline to raw: a
// reorder that moves the even-indexed bytes into the first half and the
// odd-indexed bytes into the second, a byte-delta predictor over the
// reordered bytes, then PackBits-style run-length encoding (a non-negative
// count byte n means the following byte repeats n+1 times; a negative count
// byte -n means n literal bytes follow verbatim).
func rleCompress(raw []byte) []byte {
	n := len(raw)
	if n == 0 {
		return nil
	}

	reordered := make([]byte, n)
	half := (n + 1) / 2
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			reordered[i/2] = raw[i]
		} else {
			reordered[half+i/2] = raw[i]
		}
	}

	predicted := make([]byte, n)
	predicted[0] = reordered[0]
	for i := 1; i < n; i++ {
		predicted[i] = byte(int(reordered[i]) - int(reordered[i-1]) + 128 + 256)
	}

	return packBits(predicted)
}

const maxRunLength = 127

func packBits(data []byte) []byte {
	out := make([]byte, 0, len(data))
	i := 0
	for i < len(data) {
		runLen := 1
		for i+runLen < len(data) && data[i+runLen] == data[i] && runLen < maxRunLength+1 {
			runLen++
		}

		if runLen >= 3 {
			out = append(out, byte(runLen-1), data[i])
			i += runLen
			continue
		}

		// Collect a literal run: bytes up to the next run of 3+ repeats.
		start := i
		i++
		for i < len(data) && (i+2 >= len(data) || data[i] != data[i+1] || data[i+1] != data[i+2]) && i-start < maxRunLength {
			i++
		}
		literalLen := i - start
		out = append(out, byte(-literalLen))
		out = append(out, data[start:i]...)
	}
	return out
}
