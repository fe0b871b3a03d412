// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// transpose, multiplication and matrix-vector products. All functions
// perform fail-fast validation and return wrapped sentinels.
//
// Notes:
//   - *Dense operands take a fast path over the flat buffer; other
//     implementations go through At/Set with identical loop order.

package matrix

import "fmt"

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opTranspose = "Transpose"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opEchelon   = "RowEchelon"
	opQR        = "QR"
	opSolve     = "QR.Solve"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m as *Dense, copying through At when m is another
// implementation. Kernels call it once and then work on the flat buffer.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewZeros(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Transpose returns a new cols×rows Dense with out[j,i] = m[i,j].
//
// Errors:
//   - ErrNilMatrix (wrapped with opTranspose).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewZeros(src.c, src.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < src.r; i++ {
		for j := 0; j < src.c; j++ {
			out.data[j*out.c+i] = src.data[i*src.c+j]
		}
	}

	return out, nil
}

// Mul returns the product a*b as a new Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opMul).
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewZeros(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	// i→k→j keeps the inner loop on contiguous memory of b and out.
	var aik float64
	for i := 0; i < ad.r; i++ {
		for k := 0; k < ad.c; k++ {
			aik = ad.data[i*ad.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < bd.c; j++ {
				out.data[i*out.c+j] += aik * bd.data[k*bd.c+j]
			}
		}
	}

	return out, nil
}

// MatVec returns y = m*x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opMatVec).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, d.r)
	var sum float64
	for i := 0; i < d.r; i++ {
		sum = ZeroSum
		for j := 0; j < d.c; j++ {
			sum += d.data[i*d.c+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}
