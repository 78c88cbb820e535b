// Package filter implements the pixfx filters over decoded pixel slices.
//
// This package contains:
//   - Point filters: luma grayscale, negative, luma-plane grayscale
//   - Bloom: bright-pass, separable 5-tap box blur, additive composite
//   - YUV 4:2:0 to Packed4 conversion for camera frames
//
// All filters are pure functions: they read their input, allocate a fresh
// output and keep no state between calls. Every stage that walks the image
// does so through a RowRunner, so the same code runs sequentially or split
// into row bands on a worker pool, with identical results.
//
// Integer semantics are part of the contract:
//   - Luma is the exact floor of the weighted sum, never rounded
//   - Box averages use truncating integer division
//   - Sums that can exceed 255 saturate
package filter
