package pixfx

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	intImage "github.com/gogpu/pixfx/internal/image"
)

// FromImage converts any in-memory image to a Packed4 buffer with straight
// alpha. It returns the buffer and its dimensions; an empty image yields an
// empty buffer and zero dimensions.
func FromImage(src image.Image) (pix []byte, width, height int) {
	b := src.Bounds()
	if b.Empty() {
		return []byte{}, 0, 0
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return nrgbaToPacked4(dst), b.Dx(), b.Dy()
}

// FromImageScaled resamples src to width x height with Catmull-Rom
// interpolation and returns it as a Packed4 buffer. Hosts use it to build
// preview-sized buffers before filtering.
func FromImageScaled(src image.Image, width, height int) ([]byte, error) {
	if err := intImage.Validate(width*height*4, width, height, intImage.FormatPacked4); err != nil {
		return nil, fmt.Errorf("pixfx: scale target: %w", err)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return nrgbaToPacked4(dst), nil
}

// LumaPlaneFromImage converts any in-memory image to a LumaPlane buffer using
// the standard library's gray model.
func LumaPlaneFromImage(src image.Image) (pix []byte, width, height int) {
	b := src.Bounds()
	if b.Empty() {
		return []byte{}, 0, 0
	}
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)

	out := make([]byte, w*h)
	for y := 0; y < h; y++ {
		copy(out[y*w:(y+1)*w], dst.Pix[y*dst.Stride:])
	}
	return out, w, h
}

// ToImage wraps a copy of a Packed4 buffer as an *image.NRGBA.
func ToImage(pix []byte, width, height int) (*image.NRGBA, error) {
	if err := intImage.Validate(len(pix), width, height, intImage.FormatPacked4); err != nil {
		return nil, fmt.Errorf("pixfx: %w", err)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		p := intImage.ReadPacked4(pix, i)
		o := (i/width)*dst.Stride + (i%width)*4
		dst.Pix[o+0] = p.R
		dst.Pix[o+1] = p.G
		dst.Pix[o+2] = p.B
		dst.Pix[o+3] = p.A
	}
	return dst, nil
}

// nrgbaToPacked4 reorders an NRGBA image rooted at (0, 0) into Packed4 bytes.
func nrgbaToPacked4(src *image.NRGBA) []byte {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride:]
		for x := 0; x < w; x++ {
			s := row[x*4 : x*4+4 : x*4+4]
			intImage.WritePacked4(out, y*w+x, intImage.Pixel{A: s[3], R: s[0], G: s[1], B: s[2]})
		}
	}
	return out
}
