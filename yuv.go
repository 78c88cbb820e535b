package pixfx

import "github.com/gogpu/pixfx/internal/filter"

// YUV420 is a planar 4:2:0 camera frame (Android YUV_420_888 layout): a
// full-resolution luma plane and two chroma planes subsampled by 2 in both
// directions. Interleaved chroma (NV12/NV21) is described with
// UVPixelStride 2 and U, V slices offset by one byte into the same buffer.
type YUV420 struct {
	Y, U, V []byte

	// YRowStride is the distance in bytes between luma rows (>= width).
	YRowStride int

	// UVRowStride is the distance in bytes between chroma rows.
	UVRowStride int

	// UVPixelStride is the distance in bytes between chroma samples in a row.
	UVPixelStride int
}

func (f YUV420) internal() *filter.YUV420 {
	return &filter.YUV420{
		Y:             f.Y,
		U:             f.U,
		V:             f.V,
		YRowStride:    f.YRowStride,
		UVRowStride:   f.UVRowStride,
		UVPixelStride: f.UVPixelStride,
	}
}
