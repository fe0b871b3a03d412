// SPDX-License-Identifier: MIT

// Package matrix - reduction to reduced row-echelon form.
//
// Purpose:
//   - Determine the rank of a matrix and one full set of pivot columns.
//   - The pivot columns of A are linearly independent and span A's column
//     space; equivalently they index a basis among the rows of Aᵀ.
//
// Pivoting:
//   - Columns are scanned left to right. Within a column the pivot is the
//     remaining row with the largest |value| (partial pivoting); ties keep
//     the lowest row index. A candidate with |value| <= eps marks the column
//     as dependent and it is skipped.

package matrix

import "math"

// Echelon is the outcome of RowEchelon.
type Echelon struct {
	// Rank is the number of pivots found.
	Rank int

	// PivotCols lists pivot column indices in increasing order (len == Rank).
	PivotCols []int

	// Reduced is the reduced row-echelon form (same shape as the input).
	// Rows [0,Rank) carry a leading 1 at PivotCols[i]; the rest are zero.
	Reduced *Dense
}

// RowEchelon reduces a copy of m to reduced row-echelon form using partial
// pivoting and returns its rank, pivot columns and the reduced matrix.
// The input is never mutated.
//
// Implementation:
//   - Stage 1: validate and copy m into a flat working buffer.
//   - Stage 2: for each column pick the max-|.| pivot among unused rows;
//     skip when it is within eps of zero.
//   - Stage 3: swap the pivot row up, normalize it, eliminate the column in
//     every other row, flush entries within eps to exact zero.
//
// Errors:
//   - ErrNilMatrix (wrapped with opEchelon).
//
// Determinism:
//   - Fixed column-major scan; ties broken by lowest row.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func RowEchelon(m Matrix, opts ...Option) (*Echelon, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opEchelon, err)
	}
	o := gatherOptions(opts...)

	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opEchelon, err)
	}
	a := src.Clone().(*Dense)
	rows, cols := a.r, a.c

	pivots := make([]int, 0, min(rows, cols))
	lead := 0 // next pivot row
	for col := 0; col < cols && lead < rows; col++ {
		p, best := lead, math.Abs(a.data[lead*cols+col])
		for i := lead + 1; i < rows; i++ {
			if v := math.Abs(a.data[i*cols+col]); v > best {
				p, best = i, v
			}
		}
		if best <= o.eps {
			// Dependent column: clear the residue below lead so the
			// reduced form stays exact.
			for i := lead; i < rows; i++ {
				a.data[i*cols+col] = 0
			}
			continue
		}
		if p != lead {
			swapRows(a, p, lead)
		}

		inv := 1.0 / a.data[lead*cols+col]
		for j := col; j < cols; j++ {
			a.data[lead*cols+j] *= inv
		}
		a.data[lead*cols+col] = 1

		for i := 0; i < rows; i++ {
			if i == lead {
				continue
			}
			f := a.data[i*cols+col]
			if f == 0 {
				continue
			}
			for j := col; j < cols; j++ {
				v := a.data[i*cols+j] - f*a.data[lead*cols+j]
				if math.Abs(v) <= o.eps {
					v = 0
				}
				a.data[i*cols+j] = v
			}
		}

		pivots = append(pivots, col)
		lead++
	}

	return &Echelon{Rank: len(pivots), PivotCols: pivots, Reduced: a}, nil
}

// Rank is a convenience wrapper returning only the rank of m.
func Rank(m Matrix, opts ...Option) (int, error) {
	e, err := RowEchelon(m, opts...)
	if err != nil {
		return 0, err
	}

	return e.Rank, nil
}

// swapRows exchanges rows i and k of a in place.
func swapRows(a *Dense, i, k int) {
	ri := a.data[i*a.c : (i+1)*a.c]
	rk := a.data[k*a.c : (k+1)*a.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}
}
