// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order,
// plus connected-component discovery built on the same walker.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/crndecomp/core"
)

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state. visited may be shared across
// several walks (Components reuses one map for all of them).
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any hook/context error.
// Edge weights are ignored: distances count edges.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(g, o, make(map[string]bool, g.VertexCount()))
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

func resolve(opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func newWalker(g *core.Graph, o BFSOptions, visited map[string]bool) *walker {
	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: visited,
		res: &BFSResult{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		if w.opts.MaxDepth > 0 && item.depth+1 > w.opts.MaxDepth {
			continue
		}
		neighbors, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range neighbors {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1, item.id)
			}
		}
	}

	return nil
}
