// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation
// tag via %w); tests check them with errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are invalid
	// (non-positive for NewDense, negative for NewZeros).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrRankDeficient is returned by QR-based solvers when the system matrix
	// does not have full column rank within the configured epsilon.
	ErrRankDeficient = errors.New("matrix: rank deficient")

	// ErrUnderdetermined is returned when a least-squares system has fewer
	// rows than columns.
	ErrUnderdetermined = errors.New("matrix: underdetermined system")
)
