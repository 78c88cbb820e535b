package filter

// Rec. 601 luma weights, in thousandths.
const (
	lumaR = 299
	lumaG = 587
	lumaB = 114
)

// Luma returns floor(0.299R + 0.587G + 0.114B), computed exactly in integers.
func Luma(r, g, b uint8) uint8 {
	return uint8((lumaR*int(r) + lumaG*int(g) + lumaB*int(b)) / 1000)
}
