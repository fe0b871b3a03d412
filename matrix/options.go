// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric kernels.
// This file defines Option / Options, the documented defaults and the
// gatherOptions helper that resolves a sequence of setters.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
package matrix

import "math"

// DefaultEpsilon is the absolute tolerance under which a pivot or a diagonal
// entry of R is treated as zero.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// Epsilon reports the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the numeric tolerance eps used by pivot and rank checks.
// Panics with a stable message when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewMatrixOptions resolves opts on top of the defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies setters in order (last-writer-wins) over defaults.
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
