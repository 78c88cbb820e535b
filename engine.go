package pixfx

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/pixfx/internal/filter"
	intImage "github.com/gogpu/pixfx/internal/image"
	"github.com/gogpu/pixfx/internal/parallel"
)

// Errors reported by the error-returning entry points.
var (
	// ErrInvalidInput is returned for non-positive dimensions or a buffer
	// whose length does not match width*height*bytesPerPixel.
	ErrInvalidInput = intImage.ErrInvalidInput

	// ErrUnknownFilter is returned when a filter name or value is not known.
	ErrUnknownFilter = errors.New("pixfx: unknown filter")
)

// Engine applies filters to raw pixel buffers.
//
// An Engine holds no per-call state: all methods are safe for concurrent use
// on independent buffers. The zero-option Engine runs every call on the
// calling goroutine; WithWorkers spreads the row bands of each stage over a
// worker pool, completing one stage before the next starts.
type Engine struct {
	workers int
	pool    *parallel.WorkerPool // nil when sequential
	planes  *intImage.Pool       // nil unless WithPlaneReuse
	logger  *slog.Logger         // nil means package logger
}

// NewEngine creates an Engine. Call Close when done if WithWorkers was
// given a value other than 1.
func NewEngine(opts ...EngineOption) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		workers: o.workers,
		logger:  o.logger,
	}
	if o.reusePlanes > 0 {
		e.planes = intImage.NewPool(o.reusePlanes)
	}
	if e.workers > 1 {
		e.pool = parallel.NewWorkerPool(e.workers)
	}
	return e
}

// Close stops the Engine's worker pool. It must not be called while other
// calls on the Engine are in progress. Close is safe to call multiple times;
// an Engine used after Close runs sequentially.
func (e *Engine) Close() {
	if e.pool != nil {
		e.pool.Close()
	}
}

// Workers returns the number of goroutines the Engine uses per call.
func (e *Engine) Workers() int {
	return e.workers
}

// Grayscale converts a Packed4 buffer to luma gray, keeping alpha.
// It returns an empty slice if the input is invalid.
func (e *Engine) Grayscale(pix []byte, width, height int) []byte {
	return e.run(FilterGrayscale, pix, width, height)
}

// Negative inverts the color channels of a Packed4 buffer, keeping alpha.
// It returns an empty slice if the input is invalid.
func (e *Engine) Negative(pix []byte, width, height int) []byte {
	return e.run(FilterNegative, pix, width, height)
}

// LumaGrayscale renders a LumaPlane buffer as opaque gray Packed4.
// It returns an empty slice if the input is invalid.
func (e *Engine) LumaGrayscale(pix []byte, width, height int) []byte {
	return e.run(FilterLumaGrayscale, pix, width, height)
}

// Bloom adds a glow around bright regions of a Packed4 buffer, keeping alpha.
// It returns an empty slice if the input is invalid.
func (e *Engine) Bloom(pix []byte, width, height int) []byte {
	return e.run(FilterBloom, pix, width, height)
}

// Apply runs filter f over pix. Unlike the named methods it reports why input
// was rejected: the error matches ErrInvalidInput or ErrUnknownFilter.
func (e *Engine) Apply(f Filter, pix []byte, width, height int) ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, f)
	}
	if err := intImage.Validate(len(pix), width, height, f.inputFormat()); err != nil {
		return nil, fmt.Errorf("pixfx: %s: %w", f, err)
	}

	run := e.runner()
	if f == FilterLumaGrayscale {
		out := filter.LumaGrayscale(intImage.DecodeLumaPlane(pix), width, height, run)
		return intImage.EncodePacked4(out), nil
	}

	src := e.planes.Get(width, height)
	defer e.planes.Put(src, width, height)
	intImage.DecodePacked4Into(src, pix)

	var out []intImage.Pixel
	switch f {
	case FilterGrayscale:
		out = filter.Grayscale(src, width, height, run)
	case FilterNegative:
		out = filter.Negative(src, width, height, run)
	case FilterBloom:
		out = filter.Bloom(src, width, height, run)
	}
	return intImage.EncodePacked4(out), nil
}

// YUV420ToPacked4 converts a planar 4:2:0 frame to an opaque Packed4 buffer.
// It returns an empty slice if the planes do not describe a width x height
// frame.
func (e *Engine) YUV420ToPacked4(frame YUV420, width, height int) []byte {
	f := frame.internal()
	if err := f.Validate(width, height); err != nil {
		e.reject("yuv420", len(frame.Y), width, height, err)
		return []byte{}
	}
	return intImage.EncodePacked4(filter.YUV420ToPixels(f, width, height, e.runner()))
}

func (e *Engine) run(f Filter, pix []byte, width, height int) []byte {
	out, err := e.Apply(f, pix, width, height)
	if err != nil {
		e.reject(f.String(), len(pix), width, height, err)
		return []byte{}
	}
	return out
}

func (e *Engine) reject(name string, n, width, height int, err error) {
	e.log().Debug("pixfx: rejected input",
		"filter", name,
		"width", width,
		"height", height,
		"len", n,
		"err", err,
	)
}

func (e *Engine) runner() filter.RowRunner {
	if e.pool != nil && e.pool.IsRunning() {
		return e.pool
	}
	return filter.Sequential{}
}

func (e *Engine) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return Logger()
}
