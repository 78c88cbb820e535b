package filter

import "testing"

func TestBoxBlurUniform(t *testing.T) {
	// A uniform image is a fixed point of any box blur with edge replication.
	src := make([]RGB, 6*4)
	for i := range src {
		src[i] = RGB{R: 200, G: 17, B: 99}
	}

	got := BoxBlur(src, 6, 4, 2, Sequential{})

	for i, p := range got {
		if p != src[i] {
			t.Fatalf("pixel %d = %+v, want %+v", i, p, src[i])
		}
	}
}

func TestBlurHorizontalEdgeReplicate(t *testing.T) {
	// Row: 250 0 0 0 0. With clamped taps x=0 sees 250 three times.
	src := []RGB{{R: 250}, {}, {}, {}, {}}

	got := blurHorizontal(src, 5, 1, 2, Sequential{})

	want := []uint8{150, 100, 50, 0, 0}
	for x, p := range got {
		if p.R != want[x] {
			t.Errorf("x=%d R = %d, want %d", x, p.R, want[x])
		}
	}
}

func TestBlurVerticalEdgeReplicate(t *testing.T) {
	// Column: 0 0 0 0 250 (bottom edge).
	src := []RGB{{}, {}, {}, {}, {G: 250}}

	got := blurVertical(src, 1, 5, 2, Sequential{})

	want := []uint8{0, 0, 50, 100, 150}
	for y, p := range got {
		if p.G != want[y] {
			t.Errorf("y=%d G = %d, want %d", y, p.G, want[y])
		}
	}
}

func TestBlurTruncatingAverage(t *testing.T) {
	// Taps 1 1 1 0 0 sum to 3; 3/5 truncates to 0.
	src := []RGB{{B: 1}, {B: 1}, {B: 0}, {B: 0}, {B: 0}}

	got := blurHorizontal(src, 5, 1, 2, Sequential{})

	if got[1].B != 0 {
		t.Errorf("x=1 B = %d, want 0 (truncated 3/5)", got[1].B)
	}
	if got[0].B != 0 {
		// Taps for x=0: 1 1 1 1 0 -> 4/5 -> 0.
		t.Errorf("x=0 B = %d, want 0 (truncated 4/5)", got[0].B)
	}
}

func TestBoxBlurSeparableOrder(t *testing.T) {
	// A single bright sample in a 5x5 grid spreads to a 5x5 neighbourhood
	// of 255/5/5 = 10 (truncated at each pass: 255/5 = 51, 51/5 = 10).
	src := make([]RGB, 25)
	src[12] = RGB{R: 255, G: 255, B: 255}

	got := BoxBlur(src, 5, 5, 2, Sequential{})

	for i, p := range got {
		if p.R != 10 || p.G != 10 || p.B != 10 {
			t.Errorf("pixel %d = %+v, want all channels 10", i, p)
		}
	}
}

func TestBoxBlurRunnersAgree(t *testing.T) {
	rs := runners()
	defer closeRunners(rs)

	const w, h = 37, 29
	src := make([]RGB, w*h)
	for i := range src {
		src[i] = RGB{R: uint8(i * 3), G: uint8(i * 7), B: uint8(i * 11)}
	}

	want := BoxBlur(src, w, h, 2, Sequential{})
	for name, run := range rs {
		t.Run(name, func(t *testing.T) {
			got := BoxBlur(src, w, h, 2, run)
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("pixel %d = %+v, want %+v", i, got[i], want[i])
				}
			}
		})
	}
}

func BenchmarkBoxBlur(b *testing.B) {
	const w, h = 1920, 1080
	src := make([]RGB, w*h)
	for i := range src {
		src[i] = RGB{R: uint8(i), G: uint8(i >> 3), B: uint8(i >> 5)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BoxBlur(src, w, h, BloomRadius, Sequential{})
	}
}
