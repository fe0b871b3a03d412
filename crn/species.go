// SPDX-License-Identifier: MIT

package crn

// CollectSpecies returns every species referenced by net exactly once, in
// first-seen order: reactions in source order, reactants before products,
// terms in listed order. The result fixes the coordinate order of every
// complex vector downstream.
func CollectSpecies(net Network) []string {
	seen := make(map[string]struct{})
	species := make([]string, 0)
	add := func(terms []Term) {
		for _, t := range terms {
			if _, ok := seen[t.Species]; ok {
				continue
			}
			seen[t.Species] = struct{}{}
			species = append(species, t.Species)
		}
	}
	for _, rx := range net.Reactions {
		add(rx.Reactants)
		add(rx.Products)
	}

	return species
}

// PseudoReactionCount returns r: one per irreversible reaction, two per
// reversible one.
func PseudoReactionCount(net Network) int {
	r := 0
	for _, rx := range net.Reactions {
		r++
		if rx.Reversible {
			r++
		}
	}

	return r
}
