package spm

import (
	"github.com/rs/zerolog"

	"github.com/egsolver/egsolver/energy"
)

// Options configures a Solve invocation. The algorithm itself is fully
// pinned; the only knob exposed is where to send internal diagnostics.
type Options struct {
	// Logger receives debug-level events for each strict lift and for the
	// computed Cutoff/Top bounds, mirroring the logging.debug calls the
	// Python source scattered through its solve loop. Defaults to a no-op
	// logger.
	Logger zerolog.Logger
}

// Option configures Options.
type Option func(*Options)

// WithLogger overrides the default no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns an Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// Result is the outcome of Solve: the winning region and the full
// progress measure it was derived from.
type Result struct {
	// Win maps every vertex to its energy value if finite, or -1 if it is
	// losing for the protagonist.
	Win map[int]int64

	// PM is the full least progress measure, including ⊤ entries.
	PM map[int]energy.Credit

	// Derived carries the Cutoff/Top/MaxDrop bounds the measure was
	// computed against, for callers that need them without recomputing.
	Derived energy.Derived
}
