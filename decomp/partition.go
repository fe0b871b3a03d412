// SPDX-License-Identifier: MIT

package decomp

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/crndecomp/matrix"
)

// AssignPartitions builds one partition per component.
//
// A partition starts with its component's basis reactions; each of them
// then recruits every reaction with a nonzero coefficient (|c| > eps) in
// its combination column. Recruited non-basis reactions do not recruit in
// turn. Members are deduplicated and sorted.
//
// Errors:
//   - ErrNilBasis; matrix errors are wrapped.
func AssignPartitions(components [][]int, basis *Basis, comb *matrix.Dense, eps float64) ([][]int, error) {
	if basis == nil {
		return nil, fmt.Errorf("AssignPartitions: %w", ErrNilBasis)
	}
	if err := matrix.ValidateNotNil(comb); err != nil {
		return nil, fmt.Errorf("AssignPartitions: %w", err)
	}

	parts := make([][]int, 0, len(components))
	for _, comp := range components {
		members := make(map[int]struct{}, len(comp))
		for _, b := range comp {
			members[b] = struct{}{}
			j := basis.Column(b)
			if j < 0 {
				return nil, fmt.Errorf("AssignPartitions: R%d is not a basis reaction: %w", b+1, matrix.ErrOutOfRange)
			}
			for i := 0; i < comb.Rows(); i++ {
				c, err := comb.At(i, j)
				if err != nil {
					return nil, fmt.Errorf("AssignPartitions: %w", err)
				}
				if nonzero(c, eps) {
					members[i] = struct{}{}
				}
			}
		}
		part := make([]int, 0, len(members))
		for i := range members {
			part = append(part, i)
		}
		sort.Ints(part)
		parts = append(parts, part)
	}

	return parts, nil
}

// Coverage checks partitions against {0..r-1}: missing lists indices found
// in no partition, duplicated those found in more than one.
func Coverage(partitions [][]int, r int) (missing, duplicated []int) {
	seen := make([]int, r)
	for _, part := range partitions {
		for _, i := range part {
			if i >= 0 && i < r {
				seen[i]++
			}
		}
	}
	for i, n := range seen {
		switch {
		case n == 0:
			missing = append(missing, i)
		case n > 1:
			duplicated = append(duplicated, i)
		}
	}

	return missing, duplicated
}
