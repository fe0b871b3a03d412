// SPDX-License-Identifier: MIT

// Package decomp computes the finest nontrivial incidence independent
// decomposition of a chemical reaction network.
//
// Pipeline:
//
//	species → complexes → incidence I_a → basis (row reduction of I_a)
//	→ combination matrix (least squares of every reaction over the basis)
//	→ reaction graph G (clique per combination) → connected components
//	→ partitions of {R1..Rr}
//
// Decompose drives the stages as a small state machine:
//
//	INIT → GRAPH_BUILT → COMPONENTS_COMPUTED
//	     → NO_DECOMPOSITION
//	     | PARTITIONS_BUILT → VALIDATING
//	         → PARTITIONS_FINAL
//	         | FALLBACK_RECOMPUTE → GRAPH_BUILT (unrounded)
//
// A network whose graph has at most one component has no nontrivial
// decomposition; that is a regular outcome (Result.Decomposed == false),
// not an error. When the rounded combinations leave reactions uncovered the
// stages after the solver are re-run once on the raw coefficients; if the
// covering is still incomplete the partial result is returned with
// Result.Complete == false.
//
// The stage functions (ExtractBasis, SolveCombinations, BuildReactionGraph,
// ReactionComponents, AssignPartitions) are exported for callers that want
// to inspect or recombine intermediate results.
package decomp
