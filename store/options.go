// SPDX-License-Identifier: MIT

// Package store: functional configuration of a Factory.
//
// Options only tune the eager paths (Copy, Multiply) and diagnostics; the lazy
// view algebra is unaffected by them.
//
// Notes:
//   - Constructors panic on nonsensical values (programmer error), never on data.
//   - Options are captured when the factory is created; views read them through
//     Store.Factory().
package store

import (
	"io"
	"log/slog"
	"runtime"
)

// Defaults (single source of truth).
const (
	// DefaultParallelThreshold is the element count (rows×cols of the result)
	// from which Copy and Multiply split rows across workers.
	DefaultParallelThreshold = 1 << 14
)

const (
	panicThresholdInvalid = "store: WithParallelThreshold: threshold must be >= 1"
	panicWorkersInvalid   = "store: WithWorkers: workers must be >= 1"
	panicLoggerNil        = "store: WithLogger: logger must be non-nil"
)

// Option mutates factory options.
type Option func(*Options)

// Options is the effective factory configuration. Fields are unexported; use
// the WithX constructors.
type Options struct {
	parallelThreshold int          // DefaultParallelThreshold
	workers           int          // runtime.GOMAXPROCS(0)
	logger            *slog.Logger // discards by default
}

// WithParallelThreshold sets the result size (in elements) at which the eager
// paths start using more than one worker.
func WithParallelThreshold(n int) Option {
	if n < 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.parallelThreshold = n }
}

// WithWorkers caps the number of goroutines used by the eager paths.
// WithWorkers(1) forces sequential execution.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes debug records (materialization, rejected transforms) to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

func defaultOptions() Options {
	return Options{
		parallelThreshold: DefaultParallelThreshold,
		workers:           runtime.GOMAXPROCS(0),
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// ParallelThreshold returns the configured threshold.
func (o Options) ParallelThreshold() int { return o.parallelThreshold }

// Workers returns the configured worker cap.
func (o Options) Workers() int { return o.workers }

// Logger returns the configured logger.
func (o Options) Logger() *slog.Logger { return o.logger }
