package bfs

import "github.com/katalvlaran/crndecomp/core"

// Components partitions the vertices of an undirected graph into connected
// components. Components are returned in the order of their first vertex in
// g.Vertices() (lexicographic), and each component lists its vertices in
// BFS visit order from that first vertex.
//
// Directed graphs are walked along edge direction only, so the result is
// then the set of forward-reachability classes seeded in vertex order.
//
// Time:   O(V + E·log d).
// Memory: O(V) for the shared visited set and output.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	visited := make(map[string]bool, len(vertices))
	var comps [][]string
	for _, v := range vertices {
		if visited[v] {
			continue
		}
		w := newWalker(g, o, visited)
		w.enqueue(v, 0, "")
		if err := w.loop(); err != nil {
			return nil, err
		}
		comps = append(comps, w.res.Order)
	}

	return comps, nil
}
