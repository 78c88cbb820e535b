package filter

import "github.com/gogpu/pixfx/internal/image"

// Bloom parameters. They are fixed; callers cannot tune them.
const (
	// BloomThreshold is the luma a pixel must exceed to contribute glow.
	BloomThreshold = 180

	// BloomRadius is the box blur radius applied to the bright pass.
	BloomRadius = 2
)

// Bloom adds a soft glow around bright regions:
//  1. Bright pass: keep the color of pixels whose luma exceeds BloomThreshold
//  2. Box blur the bright pass with radius BloomRadius
//  3. Add the blurred glow to the original color, saturating at 255
//
// Alpha of the original pixel is passed through. Every stage is recomputed
// on each call.
func Bloom(src []image.Pixel, width, height int, run RowRunner) []image.Pixel {
	bright := brightPass(src, width, height, run)
	glow := BoxBlur(bright, width, height, BloomRadius, run)
	return composite(src, glow, width, height, run)
}

func brightPass(src []image.Pixel, width, height int, run RowRunner) []RGB {
	dst := make([]RGB, len(src))
	run.Rows(height, func(y0, y1 int) {
		for i := y0 * width; i < y1*width; i++ {
			p := src[i]
			if Luma(p.R, p.G, p.B) > BloomThreshold {
				dst[i] = RGB{R: p.R, G: p.G, B: p.B}
			}
		}
	})
	return dst
}

func composite(src []image.Pixel, glow []RGB, width, height int, run RowRunner) []image.Pixel {
	dst := make([]image.Pixel, len(src))
	run.Rows(height, func(y0, y1 int) {
		for i := y0 * width; i < y1*width; i++ {
			p, g := src[i], glow[i]
			dst[i] = image.Pixel{
				A: p.A,
				R: image.Clamp8(int(p.R) + int(g.R)),
				G: image.Clamp8(int(p.G) + int(g.G)),
				B: image.Clamp8(int(p.B) + int(g.B)),
			}
		}
	})
	return dst
}
