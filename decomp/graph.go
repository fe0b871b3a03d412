// SPDX-License-Identifier: MIT

package decomp

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/crndecomp/bfs"
	"github.com/katalvlaran/crndecomp/core"
	"github.com/katalvlaran/crndecomp/crn"
	"github.com/katalvlaran/crndecomp/matrix"
)

// MetaReaction is the vertex metadata key holding the 0-based
// pseudo-reaction index a reaction-graph vertex stands for.
const MetaReaction = "reaction"

// BuildReactionGraph builds the undirected reaction graph G.
//
// Every basis reaction becomes a vertex labelled "R<n>". For each row of
// comb with two or more nonzero coefficients (|c| > eps), every unordered
// pair of the basis reactions involved is joined: a clique, not a chain.
// Repeated pairs are skipped, so G never holds parallel edges.
//
// Errors:
//   - ErrNilBasis; matrix.ErrDimensionMismatch when comb has the wrong
//     column count; core errors are wrapped.
//
// Complexity:
//   - Time O(r·k + Σ k_i²) where k_i is the support of row i.
func BuildReactionGraph(basis *Basis, comb *matrix.Dense, eps float64) (*core.Graph, error) {
	if basis == nil {
		return nil, fmt.Errorf("BuildReactionGraph: %w", ErrNilBasis)
	}
	if err := matrix.ValidateNotNil(comb); err != nil {
		return nil, fmt.Errorf("BuildReactionGraph: %w", err)
	}
	if comb.Cols() != len(basis.Reactions) {
		return nil, fmt.Errorf("BuildReactionGraph: %d columns for %d basis reactions: %w",
			comb.Cols(), len(basis.Reactions), matrix.ErrDimensionMismatch)
	}

	g := core.NewGraph()
	for _, idx := range basis.Reactions {
		id := crn.Label(idx)
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("BuildReactionGraph: %w", err)
		}
		v, err := g.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("BuildReactionGraph: %w", err)
		}
		v.Metadata[MetaReaction] = idx
	}

	used := make([]int, 0, len(basis.Reactions))
	for i := 0; i < comb.Rows(); i++ {
		row, err := comb.Row(i)
		if err != nil {
			return nil, fmt.Errorf("BuildReactionGraph: %w", err)
		}
		used = used[:0]
		for j, c := range row {
			if nonzero(c, eps) {
				used = append(used, j)
			}
		}
		if len(used) < 2 {
			continue
		}
		for a := 0; a < len(used); a++ {
			from := crn.Label(basis.Reactions[used[a]])
			for b := a + 1; b < len(used); b++ {
				to := crn.Label(basis.Reactions[used[b]])
				if g.HasEdge(from, to) {
					continue
				}
				if _, err = g.AddEdge(from, to, 0); err != nil {
					return nil, fmt.Errorf("BuildReactionGraph: %s-%s: %w", from, to, err)
				}
			}
		}
	}

	return g, nil
}

// ReactionComponents returns the connected components of a reaction graph
// as sorted basis reaction indices. Components are numbered by their
// smallest member, so R2 precedes R10 regardless of label ordering.
//
// Errors:
//   - ErrNilGraph; core.ErrVertexNotFound when a vertex lacks its
//     MetaReaction annotation.
func ReactionComponents(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, fmt.Errorf("ReactionComponents: %w", ErrNilGraph)
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("ReactionComponents: %w", err)
	}

	out := make([][]int, 0, len(comps))
	for _, comp := range comps {
		members := make([]int, 0, len(comp))
		for _, id := range comp {
			v, err := g.Vertex(id)
			if err != nil {
				return nil, fmt.Errorf("ReactionComponents: %s: %w", id, err)
			}
			idx, ok := v.Metadata[MetaReaction].(int)
			if !ok {
				return nil, fmt.Errorf("ReactionComponents: %s: missing %q annotation: %w",
					id, MetaReaction, core.ErrVertexNotFound)
			}
			members = append(members, idx)
		}
		sort.Ints(members)
		out = append(out, members)
	}
	sort.Slice(out, func(a, b int) bool { return out[a][0] < out[b][0] })

	return out, nil
}
