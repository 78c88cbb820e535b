package filter

// BoxTaps returns the number of taps of a uniform kernel with the given
// radius: 2*radius+1. For radius <= 0 it returns 1 (identity).
func BoxTaps(radius int) int {
	if radius <= 0 {
		return 1
	}
	return radius*2 + 1
}

// clampIndex clamps a sample coordinate to [0, n-1] (edge replication).
func clampIndex(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
