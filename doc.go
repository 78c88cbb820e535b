// Package pixfx provides pure-Go pixel filters over raw, fixed-format color
// buffers.
//
// # Overview
//
// pixfx applies one of four filters to an in-memory image and returns a new
// buffer. It is meant to sit behind a host that owns decoding, display and
// file I/O: the host passes bytes plus explicit dimensions and gets bytes back.
//
// # Buffer layouts
//
// Packed4 stores 4 bytes per pixel in the order blue, green, red, alpha, so a
// pixel read as a little-endian uint32 is 0xAARRGGBB. LumaPlane stores one
// luminance byte per pixel. Channel bytes are always addressed by offset;
// results do not depend on the host's byte order.
//
// # Filters
//
//   - Grayscale: Packed4 to Packed4, color replaced by floor(0.299R+0.587G+0.114B)
//   - Negative: Packed4 to Packed4, color replaced by 255-c
//   - LumaGrayscale: LumaPlane to Packed4, opaque gray
//   - Bloom: Packed4 to Packed4, bright pass (luma > 180), 5-tap separable box
//     blur with edge replication, additive composite
//
// Alpha is preserved by every Packed4 filter.
//
// # Invalid input
//
// The byte-buffer functions never panic on malformed input. If a dimension is
// not positive or the buffer length does not equal width*height*bytesPerPixel
// they return a zero-length slice. Apply and Engine.ApplyBatch report the
// reason instead, as errors matching ErrInvalidInput.
//
// # Quick Start
//
//	out := pixfx.Bloom(pix, width, height)
//	if len(out) == 0 {
//	    // rejected
//	}
//
//	// Row-parallel engine for large frames:
//	e := pixfx.NewEngine(pixfx.WithWorkers(0))
//	defer e.Close()
//	out = e.Bloom(pix, width, height)
//
// # Concurrency
//
// Filters are pure and keep no shared state, so calls on independent buffers
// may run concurrently. An Engine created with WithWorkers splits each filter
// stage into row bands; every stage completes before the next one reads it,
// and results are identical to the sequential path.
package pixfx
