// SPDX-License-Identifier: MIT

package crn

import (
	"fmt"

	"github.com/katalvlaran/crndecomp/matrix"
)

// Incidence marks.

// reactantMark is added at the reactant-complex row of a column.
const reactantMark = -1.0

// productMark is added at the product-complex row of a column.
const productMark = +1.0

// BuildIncidence returns the complexes × pseudo-reactions incidence matrix:
// column j carries -1 at its reactant complex and +1 at its product complex.
//
// Marks accumulate into the cell, so a self-loop (reactant complex ==
// product complex) nets to an all-zero column: it carries no incidence
// information and can never be a basis reaction.
//
// Errors:
//   - ErrNilEncoding for a nil encoding; matrix errors are wrapped.
//
// Complexity:
//   - Time O(n·r) for zero-fill, O(r) writes.
func BuildIncidence(enc *Encoding) (*matrix.Dense, error) {
	if enc == nil {
		return nil, fmt.Errorf("BuildIncidence: %w", ErrNilEncoding)
	}
	ia, err := matrix.NewZeros(enc.Complexes.Len(), len(enc.Reactions))
	if err != nil {
		return nil, fmt.Errorf("BuildIncidence: %w", err)
	}
	for _, p := range enc.Reactions {
		if err = addAt(ia, p.Reactant, p.Index, reactantMark); err != nil {
			return nil, fmt.Errorf("BuildIncidence: %s: %w", Label(p.Index), err)
		}
		if err = addAt(ia, p.Product, p.Index, productMark); err != nil {
			return nil, fmt.Errorf("BuildIncidence: %s: %w", Label(p.Index), err)
		}
	}

	return ia, nil
}

func addAt(m *matrix.Dense, i, j int, v float64) error {
	cur, err := m.At(i, j)
	if err != nil {
		return err
	}

	return m.Set(i, j, cur+v)
}
