package filter

import (
	"github.com/gogpu/pixfx/internal/image"
)

// Grayscale replaces the color channels of every pixel with its luma.
// Alpha is kept as is.
func Grayscale(src []image.Pixel, width, height int, run RowRunner) []image.Pixel {
	dst := make([]image.Pixel, len(src))
	run.Rows(height, func(y0, y1 int) {
		for i := y0 * width; i < y1*width; i++ {
			p := src[i]
			dst[i] = image.Gray(p.A, Luma(p.R, p.G, p.B))
		}
	})
	return dst
}

// Negative inverts the color channels of every pixel. Alpha is kept as is.
func Negative(src []image.Pixel, width, height int, run RowRunner) []image.Pixel {
	dst := make([]image.Pixel, len(src))
	run.Rows(height, func(y0, y1 int) {
		for i := y0 * width; i < y1*width; i++ {
			p := src[i]
			dst[i] = image.Pixel{A: p.A, R: 255 - p.R, G: 255 - p.G, B: 255 - p.B}
		}
	})
	return dst
}

// LumaGrayscale expands single-channel luma samples into opaque gray pixels.
// The source carries no alpha, so every output pixel has alpha 255.
func LumaGrayscale(src []uint8, width, height int, run RowRunner) []image.Pixel {
	dst := make([]image.Pixel, len(src))
	run.Rows(height, func(y0, y1 int) {
		for i := y0 * width; i < y1*width; i++ {
			dst[i] = image.Gray(255, src[i])
		}
	})
	return dst
}
