package pixfx

// defaultEngine backs the package-level functions. It is sequential, owns no
// goroutines and retains no buffers between calls, so it never needs closing.
var defaultEngine = NewEngine()

// Grayscale converts a Packed4 buffer to luma gray, keeping alpha.
// Each output pixel is (A, Y, Y, Y) with Y = floor(0.299R + 0.587G + 0.114B).
// It returns an empty slice unless width > 0, height > 0 and
// len(pix) == width*height*4.
func Grayscale(pix []byte, width, height int) []byte {
	return defaultEngine.Grayscale(pix, width, height)
}

// Negative inverts a Packed4 buffer: each output pixel is
// (A, 255-R, 255-G, 255-B). It returns an empty slice on invalid input.
func Negative(pix []byte, width, height int) []byte {
	return defaultEngine.Negative(pix, width, height)
}

// LumaGrayscale expands a LumaPlane buffer (one byte per pixel) into a
// Packed4 buffer of opaque gray pixels (255, Y, Y, Y). It returns an empty
// slice unless len(pix) == width*height.
func LumaGrayscale(pix []byte, width, height int) []byte {
	return defaultEngine.LumaGrayscale(pix, width, height)
}

// Bloom brightens a Packed4 buffer with a soft halo around pixels whose luma
// exceeds 180. It returns an empty slice on invalid input.
func Bloom(pix []byte, width, height int) []byte {
	return defaultEngine.Bloom(pix, width, height)
}

// YUV420ToPacked4 converts a 4:2:0 frame to an opaque Packed4 buffer ready
// for the filters. It returns an empty slice if the planes are too small.
func YUV420ToPacked4(frame YUV420, width, height int) []byte {
	return defaultEngine.YUV420ToPacked4(frame, width, height)
}

// Apply runs filter f over pix with the default sequential engine.
func Apply(f Filter, pix []byte, width, height int) ([]byte, error) {
	return defaultEngine.Apply(f, pix, width, height)
}
