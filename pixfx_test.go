package pixfx

import (
	"bytes"
	"errors"
	"testing"
)

// px builds one Packed4 pixel from its channel values.
func px(a, r, g, b byte) []byte {
	return []byte{b, g, r, a}
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// gradient returns a deterministic Packed4 buffer with varied alpha and some
// pixels above the bloom threshold.
func gradient(width, height int) []byte {
	out := make([]byte, 0, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := byte((x * 255) / max(width-1, 1))
			g := byte((y * 255) / max(height-1, 1))
			b := byte((x*7 + y*13) % 256)
			a := byte(255 - (x+y)%64)
			out = append(out, px(a, r, g, b)...)
		}
	}
	return out
}

func TestGrayscaleRedBlack(t *testing.T) {
	in := concat(px(255, 255, 0, 0), px(255, 0, 0, 0), px(255, 0, 0, 0), px(255, 255, 0, 0))
	want := concat(px(255, 76, 76, 76), px(255, 0, 0, 0), px(255, 0, 0, 0), px(255, 76, 76, 76))

	got := Grayscale(in, 2, 2)
	if !bytes.Equal(got, want) {
		t.Errorf("Grayscale() = %v, want %v", got, want)
	}
}

func TestGrayscaleExactFloor(t *testing.T) {
	// Weighted sums that float32 arithmetic lands just below an integer.
	in := concat(px(255, 8, 80, 32), px(9, 12, 122, 7))
	want := concat(px(255, 53, 53, 53), px(9, 76, 76, 76))

	got := Grayscale(in, 2, 1)
	if !bytes.Equal(got, want) {
		t.Errorf("Grayscale() = %v, want %v", got, want)
	}
}

func TestBloomExactThreshold(t *testing.T) {
	// Luma of (135, 239, 3) is exactly 181, so the pixel glows onto itself.
	got := Bloom(px(255, 135, 239, 3), 1, 1)
	if want := px(255, 255, 255, 6); !bytes.Equal(got, want) {
		t.Errorf("Bloom() = %v, want %v", got, want)
	}
}

func TestNegativeRedBlack(t *testing.T) {
	in := concat(px(255, 255, 0, 0), px(255, 0, 0, 0), px(255, 0, 0, 0), px(255, 255, 0, 0))
	want := concat(px(255, 0, 255, 255), px(255, 255, 255, 255), px(255, 255, 255, 255), px(255, 0, 255, 255))

	got := Negative(in, 2, 2)
	if !bytes.Equal(got, want) {
		t.Errorf("Negative() = %v, want %v", got, want)
	}
}

func TestLumaGrayscale(t *testing.T) {
	in := []byte{0, 100, 255, 7}
	want := concat(px(255, 0, 0, 0), px(255, 100, 100, 100), px(255, 255, 255, 255), px(255, 7, 7, 7))

	got := LumaGrayscale(in, 2, 2)
	if !bytes.Equal(got, want) {
		t.Errorf("LumaGrayscale() = %v, want %v", got, want)
	}
}

func TestBloomSinglePixel(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"dark unchanged", px(200, 200, 100, 50), px(200, 200, 100, 50)},
		{"bright saturates", px(7, 250, 250, 250), px(7, 255, 255, 255)},
		{"mixed", px(255, 120, 230, 250), px(255, 240, 255, 255)},
		{"black", px(255, 0, 0, 0), px(255, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bloom(tt.in, 1, 1)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Bloom() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBloomBlackImage(t *testing.T) {
	in := make([]byte, 6*4*4)
	for i := 3; i < len(in); i += 4 {
		in[i] = 255
	}
	got := Bloom(in, 6, 4)
	if !bytes.Equal(got, in) {
		t.Errorf("Bloom() of black image changed pixels: %v", got)
	}
}

func TestInvalidInputEmpty(t *testing.T) {
	ops := []struct {
		name string
		fn   func([]byte, int, int) []byte
	}{
		{"Grayscale", Grayscale},
		{"Negative", Negative},
		{"LumaGrayscale", LumaGrayscale},
		{"Bloom", Bloom},
	}
	inputs := []struct {
		name          string
		pix           []byte
		width, height int
	}{
		{"length 11 for 3x1", make([]byte, 11), 3, 1},
		{"zero width", make([]byte, 16), 0, 4},
		{"zero height", make([]byte, 16), 4, 0},
		{"negative width", make([]byte, 16), -2, -2},
		{"nil buffer", nil, 1, 1},
		{"too long", make([]byte, 64), 2, 2},
	}
	for _, op := range ops {
		for _, in := range inputs {
			t.Run(op.name+"/"+in.name, func(t *testing.T) {
				got := op.fn(in.pix, in.width, in.height)
				if got == nil || len(got) != 0 {
					t.Errorf("%s() = %v, want empty non-nil slice", op.name, got)
				}
			})
		}
	}
}

func TestLumaGrayscaleRejectsPacked4Length(t *testing.T) {
	// A Packed4-sized buffer is not a valid luma plane.
	if got := LumaGrayscale(make([]byte, 16), 2, 2); len(got) != 0 {
		t.Errorf("LumaGrayscale() len = %d, want 0", len(got))
	}
}

func TestOutputProperties(t *testing.T) {
	const w, h = 17, 11
	in := gradient(w, h)
	orig := append([]byte(nil), in...)

	gray := Grayscale(in, w, h)
	neg := Negative(in, w, h)
	bloom := Bloom(in, w, h)

	for name, out := range map[string][]byte{"Grayscale": gray, "Negative": neg, "Bloom": bloom} {
		if len(out) != len(in) {
			t.Fatalf("%s() len = %d, want %d", name, len(out), len(in))
		}
		for i := 3; i < len(in); i += 4 {
			if out[i] != in[i] {
				t.Errorf("%s() alpha at byte %d = %d, want %d", name, i, out[i], in[i])
				break
			}
		}
	}

	for i := 0; i < len(gray); i += 4 {
		if gray[i] != gray[i+1] || gray[i+1] != gray[i+2] {
			t.Fatalf("Grayscale() pixel %d not gray: %v", i/4, gray[i:i+4])
		}
	}

	for i := 0; i < len(in); i++ {
		if i%4 == 3 {
			continue
		}
		if bloom[i] < in[i] {
			t.Fatalf("Bloom() darkened byte %d: %d < %d", i, bloom[i], in[i])
		}
	}

	if back := Negative(neg, w, h); !bytes.Equal(back, in) {
		t.Error("Negative(Negative(x)) != x")
	}

	if !bytes.Equal(in, orig) {
		t.Error("filters modified their input")
	}
}

func TestLumaGrayscaleAlphaOpaque(t *testing.T) {
	in := make([]byte, 9*5)
	for i := range in {
		in[i] = byte(i * 5)
	}
	out := LumaGrayscale(in, 9, 5)
	for i := 0; i < len(in); i++ {
		p := out[i*4 : i*4+4]
		if p[3] != 255 || p[0] != in[i] || p[1] != in[i] || p[2] != in[i] {
			t.Fatalf("LumaGrayscale() pixel %d = %v, want gray %d opaque", i, p, in[i])
		}
	}
}

func TestApply(t *testing.T) {
	in := concat(px(255, 255, 0, 0), px(255, 0, 0, 0), px(255, 0, 0, 0), px(255, 255, 0, 0))

	got, err := Apply(FilterGrayscale, in, 2, 2)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if want := Grayscale(in, 2, 2); !bytes.Equal(got, want) {
		t.Errorf("Apply(FilterGrayscale) = %v, want %v", got, want)
	}

	if _, err := Apply(FilterBloom, make([]byte, 11), 3, 1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Apply(length 11) error = %v, want ErrInvalidInput", err)
	}
	if _, err := Apply(FilterNegative, in, 0, 2); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Apply(width 0) error = %v, want ErrInvalidInput", err)
	}
	if _, err := Apply(Filter(42), in, 2, 2); !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("Apply(Filter(42)) error = %v, want ErrUnknownFilter", err)
	}
}

func TestApplyOverflowingDimensions(t *testing.T) {
	const huge = int(^uint(0)>>1) / 2
	if _, err := Apply(FilterGrayscale, make([]byte, 12), huge, 3); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Apply(overflow) error = %v, want ErrInvalidInput", err)
	}
}

func TestYUV420ToPacked4(t *testing.T) {
	frame := YUV420{
		// Y[4] is row padding.
		Y:             []byte{128, 0, 76, 200, 0xEE, 255, 10, 76, 100},
		U:             []byte{128, 85},
		V:             []byte{128, 255},
		YRowStride:    5,
		UVRowStride:   2,
		UVPixelStride: 1,
	}

	want := concat(
		px(255, 128, 128, 128), px(255, 0, 0, 0), px(255, 250, 1, 1), px(255, 255, 125, 125),
		px(255, 255, 255, 255), px(255, 10, 10, 10), px(255, 250, 1, 1), px(255, 255, 25, 25),
	)
	got := YUV420ToPacked4(frame, 4, 2)
	if !bytes.Equal(got, want) {
		t.Errorf("YUV420ToPacked4() = %v, want %v", got, want)
	}

	frame.V = frame.V[:1]
	if got := YUV420ToPacked4(frame, 4, 2); len(got) != 0 {
		t.Errorf("YUV420ToPacked4(short V) len = %d, want 0", len(got))
	}
}

func BenchmarkBloom(b *testing.B) {
	const w, h = 640, 480
	in := gradient(w, h)
	b.ReportAllocs()
	b.SetBytes(int64(len(in)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Bloom(in, w, h)
	}
}
