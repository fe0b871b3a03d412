// SPDX-License-Identifier: MIT

package decomp

import (
	"fmt"

	"github.com/katalvlaran/crndecomp/matrix"
)

// ExtractBasis selects a maximal linearly independent set of pseudo-reactions
// from the incidence matrix (complexes × r).
//
// The pivot columns of the reduced row-echelon form of I_a are exactly the
// basis reactions: partial pivoting picks the largest |value| per column,
// ties go to the lowest row, and a column whose best candidate is within eps
// of zero is dependent on the columns before it.
//
// Errors:
//   - ErrOptionViolation for an invalid eps; matrix errors are wrapped.
//
// Complexity:
//   - Time O(n·r·min(n,r)), Space O(n·r).
func ExtractBasis(incidence *matrix.Dense, eps float64) (*Basis, error) {
	if err := checkEpsilon(eps); err != nil {
		return nil, fmt.Errorf("ExtractBasis: %w", err)
	}
	ech, err := matrix.RowEchelon(incidence, matrix.WithEpsilon(eps))
	if err != nil {
		return nil, fmt.Errorf("ExtractBasis: %w", err)
	}
	reactions, err := matrix.Transpose(incidence)
	if err != nil {
		return nil, fmt.Errorf("ExtractBasis: %w", err)
	}
	rows, err := reactions.SelectRows(ech.PivotCols)
	if err != nil {
		return nil, fmt.Errorf("ExtractBasis: %w", err)
	}

	return &Basis{Reactions: ech.PivotCols, Rows: rows, Rank: ech.Rank}, nil
}
