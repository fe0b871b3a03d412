// SPDX-License-Identifier: MIT

package crn

import (
	"fmt"
	"strconv"
	"strings"
)

// ComplexTable is a content-addressed table of complex vectors: identical
// vectors share one index, assigned on first sight.
type ComplexTable struct {
	vectors [][]float64
	index   map[string]int
}

// NewComplexTable returns an empty table.
func NewComplexTable() *ComplexTable {
	return &ComplexTable{index: make(map[string]int)}
}

// complexKey is the canonical encoding of a vector used as the table key.
func complexKey(v []float64) string {
	var b strings.Builder
	for j, x := range v {
		if j > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}

	return b.String()
}

// Intern returns the index of v, adding a copy of it when unseen.
func (t *ComplexTable) Intern(v []float64) int {
	k := complexKey(v)
	if i, ok := t.index[k]; ok {
		return i
	}
	cp := make([]float64, len(v))
	copy(cp, v)
	t.vectors = append(t.vectors, cp)
	t.index[k] = len(t.vectors) - 1

	return len(t.vectors) - 1
}

// Lookup returns the index of v without inserting it.
func (t *ComplexTable) Lookup(v []float64) (int, bool) {
	i, ok := t.index[complexKey(v)]

	return i, ok
}

// Len is the number of distinct complexes.
func (t *ComplexTable) Len() int { return len(t.vectors) }

// Vector returns a copy of complex i.
func (t *ComplexTable) Vector(i int) []float64 {
	out := make([]float64, len(t.vectors[i]))
	copy(out, t.vectors[i])

	return out
}

// Format renders complex i over species as "2A+B"; the zero complex is "0".
func (t *ComplexTable) Format(i int, species []string) string {
	var parts []string
	for j, c := range t.vectors[i] {
		if c == 0 {
			continue
		}
		if c == 1 {
			parts = append(parts, species[j])
			continue
		}
		parts = append(parts, strconv.FormatFloat(c, 'g', -1, 64)+species[j])
	}
	if len(parts) == 0 {
		return "0"
	}

	return strings.Join(parts, "+")
}

// Encoding binds the species index, the complex table and the
// pseudo-reactions derived from one network.
type Encoding struct {
	Species   []string
	Complexes *ComplexTable
	Reactions []PseudoReaction
}

// Encode maps each pseudo-reaction to its reactant and product complex over
// species. Reversible reactions yield forward then reverse. Complexes are
// interned in pseudo-reaction order, reactant before product.
//
// Errors:
//   - ErrUnknownSpecies if a term's species is not in species.
func Encode(net Network, species []string) (*Encoding, error) {
	pos := make(map[string]int, len(species))
	for j, s := range species {
		pos[s] = j
	}
	vec := func(terms []Term) ([]float64, error) {
		v := make([]float64, len(species))
		for _, t := range terms {
			j, ok := pos[t.Species]
			if !ok {
				return nil, fmt.Errorf("%q: %w", t.Species, ErrUnknownSpecies)
			}
			v[j] += float64(t.Coefficient)
		}

		return v, nil
	}

	enc := &Encoding{
		Species:   species,
		Complexes: NewComplexTable(),
		Reactions: make([]PseudoReaction, 0, PseudoReactionCount(net)),
	}
	for s, rx := range net.Reactions {
		reactant, err := vec(rx.Reactants)
		if err != nil {
			return nil, fmt.Errorf("reaction %d: %w", s+1, err)
		}
		product, err := vec(rx.Products)
		if err != nil {
			return nil, fmt.Errorf("reaction %d: %w", s+1, err)
		}

		ri := enc.Complexes.Intern(reactant)
		pi := enc.Complexes.Intern(product)
		enc.Reactions = append(enc.Reactions, PseudoReaction{
			Index: len(enc.Reactions), Source: s, Reactant: ri, Product: pi,
		})
		if rx.Reversible {
			enc.Reactions = append(enc.Reactions, PseudoReaction{
				Index: len(enc.Reactions), Source: s, Reverse: true, Reactant: pi, Product: ri,
			})
		}
	}

	return enc, nil
}

// ReactionVector returns product − reactant of pseudo-reaction i over the
// species index (a reverse pseudo-reaction yields the negated forward vector).
func (e *Encoding) ReactionVector(i int) []float64 {
	p := e.Reactions[i]
	out := e.Complexes.Vector(p.Product)
	for j, x := range e.Complexes.vectors[p.Reactant] {
		out[j] -= x
	}

	return out
}

// Describe renders pseudo-reaction i as "A+B -> C".
func (e *Encoding) Describe(i int) string {
	p := e.Reactions[i]

	return e.Complexes.Format(p.Reactant, e.Species) + " -> " + e.Complexes.Format(p.Product, e.Species)
}
