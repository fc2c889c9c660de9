package raster

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"math"
)

// ihdrEnd is the offset just past the IHDR chunk: the 8 byte signature and
// a chunk of 4 length, 4 type, 13 data and 4 CRC bytes.
const ihdrEnd = 8 + 4 + 4 + 13 + 4

var errMalformedPNG = errors.New("encoder produced no IHDR chunk")

// EncodePNG writes img as a PNG whose pHYs chunk records dpi, so viewers
// show it at its physical size.
func EncodePNG(w io.Writer, img image.Image, dpi float64) error {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	data := buf.Bytes()
	if len(data) < ihdrEnd || string(data[12:16]) != "IHDR" {
		return errMalformedPNG
	}

	for _, part := range [][]byte{data[:ihdrEnd], physChunk(dpi), data[ihdrEnd:]} {
		if _, err := w.Write(part); err != nil {
			return fmt.Errorf("writing png: %w", err)
		}
	}
	return nil
}

// physChunk returns a pHYs chunk with equal pixels per metre on both axes.
func physChunk(dpi float64) []byte {
	ppm := uint32(math.Round(dpi / 0.0254))
	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], ppm)
	binary.BigEndian.PutUint32(chunk[12:16], ppm)
	chunk[16] = 1 // unit: metre
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))
	return chunk
}
