package pixfx

import (
	"fmt"
	"strings"

	intImage "github.com/gogpu/pixfx/internal/image"
)

// Filter identifies one of the pixfx filters.
type Filter uint8

const (
	// FilterGrayscale replaces color with its luma; Packed4 in, Packed4 out.
	FilterGrayscale Filter = iota

	// FilterNegative inverts color channels; Packed4 in, Packed4 out.
	FilterNegative

	// FilterLumaGrayscale renders a luma plane as opaque gray;
	// LumaPlane in, Packed4 out.
	FilterLumaGrayscale

	// FilterBloom adds a glow around bright regions; Packed4 in, Packed4 out.
	FilterBloom

	filterCount
)

var filterNames = [filterCount]string{
	FilterGrayscale:     "grayscale",
	FilterNegative:      "negative",
	FilterLumaGrayscale: "luma-grayscale",
	FilterBloom:         "bloom",
}

// String returns the stable name of the filter, as accepted by Lookup.
func (f Filter) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Filter(%d)", uint8(f))
	}
	return filterNames[f]
}

// IsValid returns true if f is a known filter.
func (f Filter) IsValid() bool {
	return f < filterCount
}

// InputBytesPerPixel returns the bytes per pixel the filter expects:
// 1 for FilterLumaGrayscale, 4 for the others.
func (f Filter) InputBytesPerPixel() int {
	return f.inputFormat().BytesPerPixel()
}

// OutputBytesPerPixel returns the bytes per pixel of the filter's result.
// Every filter produces Packed4.
func (f Filter) OutputBytesPerPixel() int {
	return intImage.FormatPacked4.BytesPerPixel()
}

func (f Filter) inputFormat() intImage.Format {
	if f == FilterLumaGrayscale {
		return intImage.FormatLumaPlane
	}
	return intImage.FormatPacked4
}

// Lookup returns the filter with the given name. Names are matched case
// insensitively after trimming spaces.
func Lookup(name string) (Filter, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for f, n := range filterNames {
		if n == key {
			return Filter(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// Filters returns every filter in a stable order.
func Filters() []Filter {
	out := make([]Filter, filterCount)
	for i := range out {
		out[i] = Filter(i)
	}
	return out
}
