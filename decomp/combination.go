// SPDX-License-Identifier: MIT

package decomp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/crndecomp/matrix"
)

// SolveCombinations expresses every non-basis reaction as a linear
// combination of the basis reactions.
//
// reactions is the r × complexes reaction matrix (Iᵀ_a). Row i of the
// returned r × |basis| matrix holds c with Σ_j c_j·basis_j ≈ reactions[i],
// solved in the least-squares sense against one thin QR of basisᵀ. Basis
// rows stay all-zero.
//
// With rounded set, coefficients are rounded half away from zero; otherwise
// the raw solution is kept and callers compare against eps.
//
// Errors:
//   - ErrNilBasis, ErrOptionViolation; matrix errors are wrapped.
//
// Complexity:
//   - Time O(n·k² + r·n·k), Space O(n·k + r·k).
func SolveCombinations(reactions *matrix.Dense, basis *Basis, rounded bool, eps float64) (*matrix.Dense, error) {
	if basis == nil {
		return nil, fmt.Errorf("SolveCombinations: %w", ErrNilBasis)
	}
	if err := checkEpsilon(eps); err != nil {
		return nil, fmt.Errorf("SolveCombinations: %w", err)
	}
	if err := matrix.ValidateNotNil(reactions); err != nil {
		return nil, fmt.Errorf("SolveCombinations: %w", err)
	}

	k := len(basis.Reactions)
	comb, err := matrix.NewZeros(reactions.Rows(), k)
	if err != nil {
		return nil, fmt.Errorf("SolveCombinations: %w", err)
	}
	if k == 0 {
		return comb, nil
	}

	spanning, err := matrix.Transpose(basis.Rows)
	if err != nil {
		return nil, fmt.Errorf("SolveCombinations: %w", err)
	}
	qr, err := matrix.NewQR(spanning, matrix.WithEpsilon(eps))
	if err != nil {
		return nil, fmt.Errorf("SolveCombinations: %w", err)
	}

	inBasis := make(map[int]struct{}, k)
	for _, idx := range basis.Reactions {
		inBasis[idx] = struct{}{}
	}
	for i := 0; i < reactions.Rows(); i++ {
		if _, ok := inBasis[i]; ok {
			continue
		}
		target, err := reactions.Row(i)
		if err != nil {
			return nil, fmt.Errorf("SolveCombinations: %w", err)
		}
		c, err := qr.Solve(target)
		if err != nil {
			return nil, fmt.Errorf("SolveCombinations: R%d: %w", i+1, err)
		}
		for j, v := range c {
			if rounded {
				v = math.Round(v)
			}
			if err = comb.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("SolveCombinations: R%d: %w", i+1, err)
			}
		}
	}

	return comb, nil
}

// nonzero is the single coefficient test shared by graph and partition
// construction.
func nonzero(c, eps float64) bool { return math.Abs(c) > eps }
