package netfile

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/crndecomp/crn"
)

// Reaction arrows, longest first so "<->" is not read as "->".
var arrows = []struct {
	token      string
	reversible bool
}{
	{"<=>", true},
	{"<->", true},
	{"->", false},
}

// ParseEquation reads a reaction written as "2A + B -> C" or "A <=> B".
// A side that is empty or reads "0" is the zero complex. Coefficients are
// optional leading integers, with or without a space ("2A", "2 A").
func ParseEquation(eq string) (crn.Reaction, error) {
	for _, a := range arrows {
		left, right, ok := strings.Cut(eq, a.token)
		if !ok {
			continue
		}
		reactants, err := parseSide(left)
		if err != nil {
			return crn.Reaction{}, fmt.Errorf("%q: %w", eq, err)
		}
		products, err := parseSide(right)
		if err != nil {
			return crn.Reaction{}, fmt.Errorf("%q: %w", eq, err)
		}

		return crn.Reaction{Reactants: reactants, Products: products, Reversible: a.reversible}, nil
	}

	return crn.Reaction{}, fmt.Errorf("%q: no reaction arrow: %w", eq, ErrParse)
}

func parseSide(side string) ([]crn.Term, error) {
	side = strings.TrimSpace(side)
	if side == "" || side == "0" {
		return []crn.Term{}, nil
	}

	parts := strings.Split(side, "+")
	out := make([]crn.Term, 0, len(parts))
	for _, p := range parts {
		t, err := parseTerm(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, nil
}

func parseTerm(s string) (crn.Term, error) {
	if s == "" {
		return crn.Term{}, fmt.Errorf("empty term: %w", ErrParse)
	}
	n := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if n < 0 {
		return crn.Term{}, fmt.Errorf("term %q has no species: %w", s, ErrParse)
	}
	species := strings.TrimSpace(s[n:])
	if species == "" || strings.ContainsFunc(species, unicode.IsSpace) {
		return crn.Term{}, fmt.Errorf("term %q: malformed species: %w", s, ErrParse)
	}
	if n == 0 {
		return crn.Term{Species: species, Coefficient: 1}, nil
	}
	c, err := strconv.Atoi(s[:n])
	if err != nil {
		return crn.Term{}, fmt.Errorf("term %q: %w: %v", s, ErrParse, err)
	}

	return crn.Term{Species: species, Coefficient: c}, nil
}
