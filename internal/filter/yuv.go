package filter

import (
	"fmt"
	"math"

	"github.com/gogpu/pixfx/internal/image"
)

// Full-range BT.601 YUV to RGB coefficients, as used by camera pipelines.
const (
	yuvRV float32 = 1.370705
	yuvGU float32 = 0.337633
	yuvGV float32 = 0.698001
	yuvBU float32 = 1.732446
)

// YUV420 is a planar 4:2:0 frame: a full-resolution luma plane and two
// chroma planes subsampled by 2 in both directions. Chroma samples may be
// interleaved (UVPixelStride 2) or planar (UVPixelStride 1).
type YUV420 struct {
	Y, U, V []byte

	// YRowStride is the distance in bytes between luma rows.
	YRowStride int

	// UVRowStride is the distance in bytes between chroma rows.
	UVRowStride int

	// UVPixelStride is the distance in bytes between chroma samples in a row.
	UVPixelStride int
}

// Validate checks that the planes are large enough for a width x height frame.
func (f *YUV420) Validate(width, height int) error {
	need, err := image.PlaneLength(width, height, f.YRowStride, width)
	if err != nil {
		return fmt.Errorf("luma plane: %w", err)
	}
	if len(f.Y) < need {
		return fmt.Errorf("%w: luma plane has %d bytes, want %d", image.ErrDataTooSmall, len(f.Y), need)
	}

	cw, ch := (width-1)>>1 + 1, (height-1)>>1 + 1
	if f.UVPixelStride < 1 || (cw > 1 && f.UVPixelStride > (math.MaxInt-1)/(cw-1)) {
		return fmt.Errorf("%w: chroma pixel stride %d", image.ErrInvalidStride, f.UVPixelStride)
	}
	need, err = image.PlaneLength(cw, ch, f.UVRowStride, (cw-1)*f.UVPixelStride+1)
	if err != nil {
		return fmt.Errorf("chroma planes: %w", err)
	}
	if len(f.U) < need || len(f.V) < need {
		return fmt.Errorf("%w: chroma planes have %d/%d bytes, want %d",
			image.ErrDataTooSmall, len(f.U), len(f.V), need)
	}
	return nil
}

// YUV420ToPixels converts a validated frame to opaque pixels.
// Each channel is computed in float32, truncated toward zero and clamped.
func YUV420ToPixels(f *YUV420, width, height int, run RowRunner) []image.Pixel {
	dst := make([]image.Pixel, width*height)
	run.Rows(height, func(y0, y1 int) {
		for row := y0; row < y1; row++ {
			yRow := row * f.YRowStride
			uvRow := (row >> 1) * f.UVRowStride
			for col := 0; col < width; col++ {
				uvIdx := uvRow + (col>>1)*f.UVPixelStride

				y := float32(f.Y[yRow+col])
				u := float32(int(f.U[uvIdx]) - 128)
				v := float32(int(f.V[uvIdx]) - 128)

				r := float32(y + float32(yuvRV*v))
				g := float32(float32(y-float32(yuvGU*u)) - float32(yuvGV*v))
				b := float32(y + float32(yuvBU*u))

				dst[row*width+col] = image.Pixel{
					A: 255,
					R: image.Clamp8(int(r)),
					G: image.Clamp8(int(g)),
					B: image.Clamp8(int(b)),
				}
			}
		}
	})
	return dst
}
