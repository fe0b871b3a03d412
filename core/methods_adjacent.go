// File: methods_adjacent.go
// Role: Neighborhood queries and adjacency bookkeeping.
package core

import "sort"

// Neighbors returns the edges usable from id: outgoing edges for directed
// graphs, all incident edges for undirected ones. Sorted by Edge.ID.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(d·log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e == nil {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique, sorted IDs reachable by one edge from id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
			continue
		}
		if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureAdjacency creates the nested bucket from→to if missing.
// Called only under the muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}
