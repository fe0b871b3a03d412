// Package core provides a thread-safe in-memory Graph with a minimal,
// composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Deterministic iteration: Vertices(), Edges(), NeighborIDs() all return
// sorted results, so algorithms layered on top (bfs.Components, the
// reaction-graph builder in decomp) produce reproducible output.
//
// Core Methods:
//
//	AddVertex(id string) error                               // O(1), idempotent
//	HasVertex(id string) bool                                // O(1)
//	Vertex(id string) (*Vertex, error)                       // O(1)
//	AddEdge(from, to string, weight int64) (string, error)   // O(1)†
//	HasEdge(from, to string) bool                            // O(1)
//	Neighbors(id string) ([]*Edge, error)                    // O(d·log d)
//	NeighborIDs(id string) ([]string, error)                 // O(d·log d), unique, sorted
//	Vertices() []string / Edges() []*Edge                    // sorted snapshots
//	VertexCount() / EdgeCount()                              // O(1)
//
// † amortized: atomic ID generation + nested-map insertion.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
