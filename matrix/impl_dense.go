// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Induced) and row snapshots (Row).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxInduce = "Induced"
	ctxFrom   = "NewDenseFrom"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>=0; zero only via NewZeros/Induced)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewZeros returns a zero-initialized rows×cols *Dense and, unlike NewDense,
// accepts empty shapes (0×n, n×0). Pipelines whose dimensions are derived
// from data (e.g. an empty basis) use it to keep shapes honest.
//
// Errors:
//   - ErrInvalidDimensions on negative dimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom copies a rectangular [][]float64 literal into a new Dense.
// Every row must have the same length; values must be finite.
//
// Errors:
//   - ErrInvalidDimensions for an empty literal or empty first row.
//   - ErrDimensionMismatch for ragged rows.
//   - ErrNaNInf for non-finite entries.
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFrom, ErrInvalidDimensions)
	}
	c := len(rows[0])
	m := &Dense{r: len(rows), c: c, data: make([]float64, len(rows)*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w", ctxFrom, i, len(row), c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxFrom, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). NaN and ±Inf are rejected with ErrNaNInf.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy (new buffer).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders rows as bracketed, comma-separated lines for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base := i * m.c
		for j := 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes the submatrix at rowsIdx × colsIdx (copy, in the
// given order). Zero-area selections are legal.
//
// Errors:
//   - ErrOutOfRange if any index is outside the base shape.
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	res := &Dense{r: rp, c: cp, data: make([]float64, rp*cp)}

	for _, cj := range colsIdx {
		if cj < 0 || cj >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}
	for i, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j, cj := range colsIdx {
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// SelectRows is Induced over all columns.
func (m *Dense) SelectRows(rowsIdx []int) (*Dense, error) {
	cols := make([]int, m.c)
	for j := range cols {
		cols[j] = j
	}

	return m.Induced(rowsIdx, cols)
}
