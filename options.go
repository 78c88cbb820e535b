package pixfx

import (
	"log/slog"
	"runtime"
)

// EngineOption configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Sequential engine, silent
//	e := pixfx.NewEngine()
//
//	// Row-parallel engine with its own logger
//	e := pixfx.NewEngine(pixfx.WithWorkers(0), pixfx.WithLogger(logger))
//	defer e.Close()
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	workers     int
	reusePlanes int
	logger      *slog.Logger
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		workers:     1,
		reusePlanes: 0,   // Allocate per call
		logger:      nil, // Falls back to the package logger
	}
}

// WithWorkers sets how many goroutines an Engine uses to process the row
// bands of a single call, and how many batch jobs it runs at once.
// 1 keeps everything on the calling goroutine; 0 or a negative value uses
// GOMAXPROCS. Output is identical for every worker count.
func WithWorkers(n int) EngineOption {
	return func(o *engineOptions) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithLogger sets the logger for one Engine instead of the package logger.
// A nil logger restores the default.
func WithLogger(l *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = l
	}
}

// WithPlaneReuse lets an Engine keep up to n decoded input planes between
// calls, for hosts that filter a stream of same-sized frames. Only the most
// recent frame size is retained. n <= 0 disables reuse, which is the default.
func WithPlaneReuse(n int) EngineOption {
	return func(o *engineOptions) {
		o.reusePlanes = max(n, 0)
	}
}
