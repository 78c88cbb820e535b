package filter

import "github.com/gogpu/pixfx/internal/image"

// RGB is a three-channel sample used by the bloom stages, which carry no alpha.
type RGB struct {
	R, G, B uint8
}

// BoxBlur applies a separable uniform blur of the given radius to src.
// The two passes run in order and each one completes before the next starts:
//  1. Horizontal pass: average 2*radius+1 taps along each row
//  2. Vertical pass: average 2*radius+1 taps along each column of the
//     horizontal result
//
// Out-of-range taps are clamped to the nearest edge pixel. Averages use
// truncating integer division.
func BoxBlur(src []RGB, width, height, radius int, run RowRunner) []RGB {
	tmp := blurHorizontal(src, width, height, radius, run)
	return blurVertical(tmp, width, height, radius, run)
}

// blurHorizontal applies 1D horizontal convolution.
func blurHorizontal(src []RGB, width, height, radius int, run RowRunner) []RGB {
	taps := BoxTaps(radius)
	dst := make([]RGB, len(src))

	run.Rows(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := src[y*width : (y+1)*width]
			for x := 0; x < width; x++ {
				var r, g, b int
				for k := -radius; k <= radius; k++ {
					p := row[clampIndex(x+k, width)]
					r += int(p.R)
					g += int(p.G)
					b += int(p.B)
				}
				dst[y*width+x] = RGB{
					R: image.Clamp8(r / taps),
					G: image.Clamp8(g / taps),
					B: image.Clamp8(b / taps),
				}
			}
		}
	})
	return dst
}

// blurVertical applies 1D vertical convolution. It reads only src, which must
// be the fully materialized horizontal pass.
func blurVertical(src []RGB, width, height, radius int, run RowRunner) []RGB {
	taps := BoxTaps(radius)
	dst := make([]RGB, len(src))

	run.Rows(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < width; x++ {
				var r, g, b int
				for k := -radius; k <= radius; k++ {
					p := src[clampIndex(y+k, height)*width+x]
					r += int(p.R)
					g += int(p.G)
					b += int(p.B)
				}
				dst[y*width+x] = RGB{
					R: image.Clamp8(r / taps),
					G: image.Clamp8(g / taps),
					B: image.Clamp8(b / taps),
				}
			}
		}
	})
	return dst
}
