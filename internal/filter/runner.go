package filter

// RowRunner executes fn over [0, height) split into row bands and returns
// only after every band has finished. Bands never overlap.
type RowRunner interface {
	Rows(height int, fn func(y0, y1 int))
}

// Sequential is a RowRunner that processes the whole image in one band on the
// calling goroutine.
type Sequential struct{}

// Rows implements RowRunner.
func (Sequential) Rows(height int, fn func(y0, y1 int)) {
	if height > 0 {
		fn(0, height)
	}
}
