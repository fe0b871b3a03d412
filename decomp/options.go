// SPDX-License-Identifier: MIT

package decomp

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/crndecomp/matrix"
)

// Option configures Decompose via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Decompose runs.
type Option func(*Options)

// Options holds the resolved configuration of one Decompose call.
type Options struct {
	// Epsilon is the absolute tolerance for pivots, rank checks and
	// nonzero tests on combination coefficients.
	Epsilon float64

	// Fallback enables the single unrounded re-run on incomplete coverage.
	Fallback bool

	// Logger receives stage records; never nil after resolution.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns matrix.DefaultEpsilon, fallback enabled and a
// logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Epsilon:  matrix.DefaultEpsilon,
		Fallback: true,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithEpsilon sets the numeric tolerance.
//
//	eps >= 0 and finite: accepted
//	otherwise: ErrOptionViolation
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if err := checkEpsilon(eps); err != nil {
			o.err = err

			return
		}
		o.Epsilon = eps
	}
}

// WithFallback toggles the unrounded re-run.
func WithFallback(enabled bool) Option {
	return func(o *Options) { o.Fallback = enabled }
}

// WithLogger routes stage records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

func checkEpsilon(eps float64) error {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return fmt.Errorf("%w: epsilon must be finite and non-negative (%g)", ErrOptionViolation, eps)
	}

	return nil
}
