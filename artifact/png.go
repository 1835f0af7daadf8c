package artifact

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// EncodePNG writes an RGBA8 buffer (row-major, stride == width*4) to w as a
// PNG, using the standard library's image/png encoder — the same choice
// original_source makes via stb_image, and already a teacher module
// dependency for context output.
func EncodePNG(w io.Writer, width, height int, rgba []byte) error {
	need := width * height * 4
	if len(rgba) < need {
		return fmt.Errorf("artifact: buffer too small: have %d, need %d", len(rgba), need)
	}
	img := &image.RGBA{
		Pix:    rgba[:need],
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return png.Encode(w, img)
}

// WriteFile encodes and writes an RGBA8 buffer to a PNG file at path,
// creating parent directories as needed is the caller's responsibility.
func WriteFile(path string, width, height int, rgba []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("artifact: create %s: %w", path, err)
	}
	defer f.Close()
	if err := EncodePNG(f, width, height, rgba); err != nil {
		return fmt.Errorf("artifact: encode %s: %w", path, err)
	}
	return nil
}

// DecodeFile reads a PNG file at path and returns it as a tightly packed
// RGBA8 buffer plus its dimensions.
func DecodeFile(path string) (rgba []byte, width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("artifact: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("artifact: decode %s: %w", path, err)
	}
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()

	if rgbaImg, ok := img.(*image.RGBA); ok && rgbaImg.Stride == width*4 {
		return rgbaImg.Pix, width, height, nil
	}

	out := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			off := (y*width + x) * 4
			out[off] = uint8(r >> 8)
			out[off+1] = uint8(g >> 8)
			out[off+2] = uint8(bl >> 8)
			out[off+3] = uint8(a >> 8)
		}
	}
	return out, width, height, nil
}
