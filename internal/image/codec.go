package image

// Pixel is one decoded Packed4 pixel with straight (non-premultiplied) alpha.
type Pixel struct {
	A, R, G, B uint8
}

// Gray returns a pixel with alpha a whose color channels all equal v.
func Gray(a, v uint8) Pixel {
	return Pixel{A: a, R: v, G: v, B: v}
}

// ReadPacked4 decodes the i-th pixel of a Packed4 buffer.
// Channels are read from explicit byte offsets so the result does not depend
// on the host's native word order.
func ReadPacked4(data []byte, i int) Pixel {
	p := data[i*4 : i*4+4 : i*4+4]
	return Pixel{
		A: p[OffsetAlpha],
		R: p[OffsetRed],
		G: p[OffsetGreen],
		B: p[OffsetBlue],
	}
}

// WritePacked4 encodes px as the i-th pixel of a Packed4 buffer.
func WritePacked4(data []byte, i int, px Pixel) {
	p := data[i*4 : i*4+4 : i*4+4]
	p[OffsetBlue] = px.B
	p[OffsetGreen] = px.G
	p[OffsetRed] = px.R
	p[OffsetAlpha] = px.A
}

// DecodePacked4 decodes every pixel of a Packed4 buffer.
// A trailing partial pixel is ignored; callers validate the length first.
func DecodePacked4(data []byte) []Pixel {
	out := make([]Pixel, len(data)/4)
	DecodePacked4Into(out, data)
	return out
}

// DecodePacked4Into decodes len(dst) pixels of a Packed4 buffer into dst.
func DecodePacked4Into(dst []Pixel, data []byte) {
	for i := range dst {
		dst[i] = ReadPacked4(data, i)
	}
}

// EncodePacked4 serializes pixels into a new buffer of exactly 4*len(px) bytes.
func EncodePacked4(px []Pixel) []byte {
	out := make([]byte, len(px)*4)
	for i, p := range px {
		WritePacked4(out, i, p)
	}
	return out
}

// DecodeLumaPlane returns a copy of a LumaPlane buffer, one sample per pixel.
func DecodeLumaPlane(data []byte) []uint8 {
	out := make([]uint8, len(data))
	copy(out, data)
	return out
}

// Clamp8 saturates v to [0, 255].
func Clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
