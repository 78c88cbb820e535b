package image

import (
	"errors"
	"fmt"
	"math"
)

// Errors reported by Validate. Each wraps ErrInvalidInput so callers that only
// care whether a buffer was rejected can test for that one sentinel.
var (
	// ErrInvalidInput is the single rejection kind for filter input.
	ErrInvalidInput = errors.New("image: invalid input")

	// ErrInvalidDimensions is returned when width or height is non-positive,
	// or when width*height*bytesPerPixel does not fit in an int.
	ErrInvalidDimensions = fmt.Errorf("%w: invalid dimensions", ErrInvalidInput)

	// ErrLengthMismatch is returned when the buffer length differs from
	// width*height*bytesPerPixel.
	ErrLengthMismatch = fmt.Errorf("%w: buffer length mismatch", ErrInvalidInput)

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = fmt.Errorf("%w: invalid format", ErrInvalidInput)

	// ErrInvalidStride is returned when a plane stride is too small for width.
	ErrInvalidStride = fmt.Errorf("%w: stride too small for width", ErrInvalidInput)

	// ErrDataTooSmall is returned when a plane is shorter than its layout needs.
	ErrDataTooSmall = fmt.Errorf("%w: data buffer too small", ErrInvalidInput)
)

// Validate checks that a buffer of length n holds exactly width*height pixels
// of the given format. It must succeed before any pixel of the buffer is read.
func Validate(n, width, height int, format Format) error {
	if !format.IsValid() {
		return ErrInvalidFormat
	}
	if _, err := expectedLength(width, height, format.BytesPerPixel()); err != nil {
		return err
	}
	if want := format.ImageBytes(width, height); n != want {
		return fmt.Errorf("%w: got %d bytes, want %d for %dx%d %s",
			ErrLengthMismatch, n, want, width, height, format)
	}
	return nil
}

// PlaneLength returns the minimum length of a plane of height rows whose
// rows start stride bytes apart and whose last row spans rowBytes bytes.
func PlaneLength(width, height, stride, rowBytes int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if stride < rowBytes || rowBytes <= 0 {
		return 0, fmt.Errorf("%w: stride %d, row %d bytes", ErrInvalidStride, stride, rowBytes)
	}
	if height > 1 && stride > (math.MaxInt-rowBytes)/(height-1) {
		return 0, fmt.Errorf("%w: stride %d x %d rows overflows", ErrInvalidDimensions, stride, height)
	}
	return (height-1)*stride + rowBytes, nil
}

// expectedLength returns width*height*bpp, rejecting non-positive inputs and
// products that overflow int.
func expectedLength(width, height, bpp int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/height || width*height > math.MaxInt/bpp {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	return width * height * bpp, nil
}
