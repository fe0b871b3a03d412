// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear algebra used by the decomposition
// pipeline: a row-major Dense container with safe accessors, Transpose and
// row selection, reduction to row-echelon form with partial pivoting, and a
// thin Householder QR with a least-squares solver for tall, full-column-rank
// systems.
//
// All kernels are deterministic: loop orders are fixed and no map iteration
// takes part in any numeric result. Public accessors never panic on user
// input; they return the sentinel errors declared in errors.go, wrapped with
// an operation tag so callers can match them with errors.Is.
//
// Numeric tolerance is configured with functional options:
//
//	ech, err := matrix.RowEchelon(a, matrix.WithEpsilon(1e-12))
//
// Complexity quicksheet (m×n input):
//   - NewDense / Clone / Transpose: O(m·n)
//   - RowEchelon: O(m·n·min(m,n))
//   - QR (thin, m ≥ n): O(m·n²); each Solve: O(m·n)
package matrix
