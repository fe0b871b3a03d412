// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building and querying graphs.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// edgeIDPrefix is the textual prefix of generated edge IDs.
const edgeIDPrefix = 'e'

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data (e.g. the pseudo-reaction index a
// reaction-graph vertex stands for).
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost or capacity of the edge.
	Weight int64

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// muVert protects the vertices map; muEdgeAdj protects the edges map and
// adjacencyList. Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[from][to][edgeID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the construction-time directedness.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}
