// SPDX-License-Identifier: MIT

// Package matrix - thin Householder QR and least squares.
//
// Purpose:
//   - Factor a tall m×n matrix A (m ≥ n) as A = Q·R with Q implicit
//     (stored as Householder reflectors) and R upper-triangular n×n.
//   - Solve min‖A·x − b‖₂ for many right-hand sides against one factorization.
//
// Notes:
//   - The reflectors are applied to b directly; Q is never materialized.
//   - Full column rank is required at Solve time: a |R[k,k]| ≤ eps diagonal
//     yields ErrRankDeficient instead of a silently wrong answer.

package matrix

import (
	"fmt"
	"math"
)

// QR holds a thin Householder factorization of a tall matrix.
type QR struct {
	m, n int
	vs   [][]float64 // reflector k acts on rows [k,m); nil for a zero column
	taus []float64   // 2/(vᵀv) per reflector
	r    *Dense      // n×n upper-triangular factor
	eps  float64
}

// NewQR factors a (m×n, m ≥ n) with Householder reflections.
//
// Implementation:
//   - Stage 1: validate shape; copy a into a working buffer.
//   - Stage 2: for k=0..n-1 build v = x − α·e₁ with α = −sign(x₀)‖x‖,
//     apply H = I − τ·v·vᵀ to the trailing columns.
//   - Stage 3: lift the upper triangle into R.
//
// Errors:
//   - ErrNilMatrix, ErrUnderdetermined (rows < cols), wrapped with opQR.
//
// Complexity:
//   - Time O(m·n²), Space O(m·n).
func NewQR(a Matrix, opts ...Option) (*QR, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	if a.Rows() < a.Cols() {
		return nil, matrixErrorf(opQR, fmt.Errorf("%dx%d: %w", a.Rows(), a.Cols(), ErrUnderdetermined))
	}
	o := gatherOptions(opts...)

	src, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	w := src.Clone().(*Dense)
	m, n := w.r, w.c

	f := &QR{m: m, n: n, vs: make([][]float64, n), taus: make([]float64, n), eps: o.eps}
	for k := 0; k < n; k++ {
		norm := ZeroSum
		for i := k; i < m; i++ {
			norm += w.data[i*n+k] * w.data[i*n+k]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // zero column: identity reflector, R[k,k] stays 0
		}
		alpha := -math.Copysign(norm, w.data[k*n+k])

		v := make([]float64, m-k)
		for i := k; i < m; i++ {
			v[i-k] = w.data[i*n+k]
		}
		v[0] -= alpha

		beta := ZeroSum
		for _, vi := range v {
			beta += vi * vi
		}
		if beta == 0 {
			continue
		}
		tau := 2.0 / beta

		for j := k; j < n; j++ {
			s := ZeroSum
			for i := k; i < m; i++ {
				s += v[i-k] * w.data[i*n+j]
			}
			s *= tau
			for i := k; i < m; i++ {
				w.data[i*n+j] -= s * v[i-k]
			}
		}
		f.vs[k], f.taus[k] = v, tau
	}

	r, err := NewZeros(n, n)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			r.data[i*n+j] = w.data[i*n+j]
		}
	}
	f.r = r

	return f, nil
}

// R returns a copy of the upper-triangular factor.
func (f *QR) R() *Dense { return f.r.Clone().(*Dense) }

// Solve returns the least-squares solution x of A·x ≈ b.
//
// Errors:
//   - ErrDimensionMismatch when len(b) != rows(A).
//   - ErrRankDeficient when a diagonal entry of R is within eps of zero.
//
// Complexity:
//   - Time O(m·n), Space O(m).
func (f *QR) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	y := make([]float64, f.m)
	copy(y, b)

	// y ← Qᵀ·b
	for k := 0; k < f.n; k++ {
		v := f.vs[k]
		if v == nil {
			continue
		}
		s := ZeroSum
		for i := k; i < f.m; i++ {
			s += v[i-k] * y[i]
		}
		s *= f.taus[k]
		for i := k; i < f.m; i++ {
			y[i] -= s * v[i-k]
		}
	}

	// Back substitution on R·x = y[:n].
	x := make([]float64, f.n)
	for i := f.n - 1; i >= 0; i-- {
		d := f.r.data[i*f.n+i]
		if math.Abs(d) <= f.eps {
			return nil, matrixErrorf(opSolve, fmt.Errorf("R[%d,%d]=%g: %w", i, i, d, ErrRankDeficient))
		}
		s := y[i]
		for j := i + 1; j < f.n; j++ {
			s -= f.r.data[i*f.n+j] * x[j]
		}
		x[i] = s / d
	}

	return x, nil
}

// LeastSquares factors a and solves a single right-hand side.
// Prefer NewQR + Solve when many right-hand sides share one matrix.
func LeastSquares(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	f, err := NewQR(a, opts...)
	if err != nil {
		return nil, err
	}

	return f.Solve(b)
}
