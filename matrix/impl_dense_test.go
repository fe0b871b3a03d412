// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crndecomp/matrix"
)

// mustDense builds a Dense from a literal or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	z, err := matrix.NewZeros(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, z.Rows())
	assert.Equal(t, 4, z.Cols())
	_, err = matrix.NewZeros(-1, 0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestNewDenseFrom_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseFrom(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestDense_InducedAndRows(t *testing.T) {
	m := mustDense(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	sub, err := m.Induced([]int{2, 0}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, "[8]\n[2]\n", sub.String())

	rows, err := m.SelectRows([]int{1})
	require.NoError(t, err)
	r, err := rows.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, r)

	empty, err := m.SelectRows(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())

	_, err = m.Induced([]int{3}, []int{0})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestTransposeMulMatVec(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, "[1, 4]\n[2, 5]\n[3, 6]\n", at.String())

	p, err := matrix.Mul(a, at)
	require.NoError(t, err)
	assert.Equal(t, "[14, 32]\n[32, 77]\n", p.String())

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	var nilDense *matrix.Dense
	_, err = matrix.Transpose(nilDense)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
	assert.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	assert.Equal(t, 1e-3, matrix.NewMatrixOptions(matrix.WithEpsilon(1e-3)).Epsilon())
	assert.Equal(t, matrix.DefaultEpsilon, matrix.NewMatrixOptions().Epsilon())
}
