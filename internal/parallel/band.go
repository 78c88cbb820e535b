package parallel

// MinBandRows is the smallest number of rows worth handing to a worker.
// Shorter images run as a single band on the calling goroutine.
const MinBandRows = 8

// Band is a half-open range of image rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows divides height rows into at most n contiguous bands of near-equal
// size, each at least MinBandRows tall except when height itself is smaller.
// The bands cover [0, height) in order without gaps or overlap.
func SplitRows(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	if maxBands := (height + MinBandRows - 1) / MinBandRows; n > maxBands {
		n = maxBands
	}
	if n < 1 {
		n = 1
	}

	bands := make([]Band, 0, n)
	base, extra := height/n, height%n
	y := 0
	for i := range n {
		rows := base
		if i < extra {
			rows++
		}
		bands = append(bands, Band{Y0: y, Y1: y + rows})
		y += rows
	}
	return bands
}

// Rows runs fn over [0, height) split into bands, two per worker, and returns
// once every band has finished. A single band runs on the calling goroutine.
func (p *WorkerPool) Rows(height int, fn func(y0, y1 int)) {
	bands := SplitRows(height, p.workers*2)
	if len(bands) == 1 {
		fn(bands[0].Y0, bands[0].Y1)
		return
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b.Y0, b.Y1) }
	}
	p.ExecuteAll(work)
}
