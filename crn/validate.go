// SPDX-License-Identifier: MIT

package crn

import "fmt"

// Validate checks a network before any matrix is built.
//
// Rules:
//   - every term names a species (non-empty);
//   - every coefficient is > 0;
//   - every reaction has at least one reactant or product term.
//
// A network with zero reactions is valid (degenerate, decomposes to
// nothing). The first violation is returned, wrapping ErrInvalidNetwork
// with the reaction label and offending term.
func Validate(net Network) error {
	for i, rx := range net.Reactions {
		if len(rx.Reactants) == 0 && len(rx.Products) == 0 {
			return fmt.Errorf("reaction %d: empty reactant and product sides: %w", i+1, ErrInvalidNetwork)
		}
		if err := validateSide(i, "reactant", rx.Reactants); err != nil {
			return err
		}
		if err := validateSide(i, "product", rx.Products); err != nil {
			return err
		}
	}

	return nil
}

func validateSide(i int, side string, terms []Term) error {
	for _, t := range terms {
		if t.Species == "" {
			return fmt.Errorf("reaction %d: %s with empty species name: %w", i+1, side, ErrInvalidNetwork)
		}
		if t.Coefficient <= 0 {
			return fmt.Errorf("reaction %d: %s %q has stoichiometry %d: %w",
				i+1, side, t.Species, t.Coefficient, ErrInvalidNetwork)
		}
	}

	return nil
}
