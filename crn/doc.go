// SPDX-License-Identifier: MIT

// Package crn models a chemical reaction network and derives the
// structures every later stage of the decomposition pipeline is indexed by.
//
// What
//
//   - Network / Reaction / Term: the already-parsed input (identifier plus
//     reactions, each a reactant side, a product side and a reversibility flag).
//   - Validate: rejects malformed networks with ErrInvalidNetwork.
//   - CollectSpecies: the canonical species index (first-seen order).
//   - Encode: expands reversible reactions into forward/reverse
//     pseudo-reactions and interns every complex vector into a
//     content-addressed ComplexTable.
//   - BuildIncidence: the complexes × pseudo-reactions incidence matrix.
//
// Indexing
//
//	Pseudo-reactions are 0-based internally (PseudoReaction.Index) and are
//	labelled "R1", "R2", … externally (Label). A reversible source reaction
//	contributes its forward direction then its reverse, consecutively.
//
// Complexity (S = species, R = source reactions, r ≤ 2R pseudo-reactions,
// n = distinct complexes): CollectSpecies O(total terms); Encode O(r·S);
// BuildIncidence O(n·r).
package crn
