package filter

import (
	"github.com/gogpu/pixfx/internal/image"
	"github.com/gogpu/pixfx/internal/parallel"
)

// Test helper functions shared across filter tests.

// createTestPixels creates a width*height pixel slice filled with px.
func createTestPixels(w, h int, px image.Pixel) []image.Pixel {
	out := make([]image.Pixel, w*h)
	for i := range out {
		out[i] = px
	}
	return out
}

// patternPixels creates a deterministic image with a spread of channel values,
// including some pixels above the bloom threshold.
func patternPixels(w, h int) []image.Pixel {
	out := make([]image.Pixel, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			out[i] = image.Pixel{
				A: uint8(i * 13),
				R: uint8(x*37 + y*11),
				G: uint8(x*5 + y*29),
				B: uint8((x ^ y) * 23),
			}
		}
	}
	return out
}

// runners returns the row runners every filter must agree across.
func runners() map[string]RowRunner {
	return map[string]RowRunner{
		"sequential": Sequential{},
		"pool":       parallel.NewWorkerPool(4),
	}
}

// closeRunners stops any worker pools returned by runners.
func closeRunners(rs map[string]RowRunner) {
	for _, r := range rs {
		if p, ok := r.(*parallel.WorkerPool); ok {
			p.Close()
		}
	}
}

func pixelsEqual(a, b []image.Pixel) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
