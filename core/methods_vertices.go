// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the stored *Vertex for id. The Metadata map is live:
// callers annotate vertices through it.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
