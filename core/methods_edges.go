// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc ("e1" < "e2" < … in
//     insertion order for up to 9 edges, lexicographic beyond that).
package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// AddEdge connects from→to (mirrored when the graph is undirected) and
// returns the generated edge ID. Missing endpoints are created.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[eid] = e

	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists. Undirected
// edges are mirrored, so HasEdge works both ways for them.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// Edges returns a snapshot of all edges sorted by ID.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns |E| (an undirected edge counts once).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID reserves the next textual edge ID ("e1", "e2", …).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
