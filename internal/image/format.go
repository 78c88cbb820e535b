// Package image defines the pixel buffer layouts understood by pixfx,
// the length validation every filter runs first, and the codec that turns
// raw bytes into pixels and back.
package image

// Format represents a pixel storage layout.
type Format uint8

const (
	// FormatPacked4 stores one pixel in 4 bytes: blue, green, red, alpha.
	// Read as a little-endian 32-bit word this is 0xAARRGGBB.
	FormatPacked4 Format = iota

	// FormatLumaPlane stores one luminance byte per pixel, no color or alpha.
	FormatLumaPlane

	// formatCount is the number of formats (for internal use).
	formatCount
)

// Byte offsets of the channels inside a Packed4 pixel.
const (
	OffsetBlue  = 0
	OffsetGreen = 1
	OffsetRed   = 2
	OffsetAlpha = 3
)

var bytesPerPixel = [formatCount]int{
	FormatPacked4:   4,
	FormatLumaPlane: 1,
}

// BytesPerPixel returns the number of bytes per pixel for this format,
// or 0 for an unknown format.
func (f Format) BytesPerPixel() int {
	if f >= formatCount {
		return 0
	}
	return bytesPerPixel[f]
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatPacked4:
		return "Packed4"
	case FormatLumaPlane:
		return "LumaPlane"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// ImageBytes calculates the total number of bytes needed for an image.
// The caller is responsible for checking dimensions for overflow first.
func (f Format) ImageBytes(width, height int) int {
	return width * height * f.BytesPerPixel()
}
