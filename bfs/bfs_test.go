package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crndecomp/bfs"
	"github.com/katalvlaran/crndecomp/core"
)

// buildGraph creates an undirected graph from an edge list plus isolated vertices.
func buildGraph(t *testing.T, edges [][2]string, isolated ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	for _, v := range isolated {
		require.NoError(t, g.AddVertex(v))
	}

	return g
}

func TestBFS_NilGraphAndMissingStart(t *testing.T) {
	res, err := bfs.BFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(core.NewGraph(), "X")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(core.NewGraph(), "X", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_OrderDepthAndPath(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}})

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, 2, res.Depth["D"])

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, path)

	_, err = res.PathTo("Z")
	assert.Error(t, err)
}

func TestBFS_MaxDepthAndHooks(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}})

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents_TableDriven(t *testing.T) {
	tests := []struct {
		name     string
		edges    [][2]string
		isolated []string
		want     [][]string
	}{
		{
			name: "Empty",
			want: nil,
		},
		{
			name:     "SingleVertex",
			isolated: []string{"R1"},
			want:     [][]string{{"R1"}},
		},
		{
			name:     "TwoIsolated",
			isolated: []string{"R3", "R1"},
			want:     [][]string{{"R1"}, {"R3"}},
		},
		{
			name:     "CliqueAndIsolated",
			edges:    [][2]string{{"R1", "R2"}, {"R1", "R4"}, {"R2", "R4"}},
			isolated: []string{"R3"},
			want:     [][]string{{"R1", "R2", "R4"}, {"R3"}},
		},
		{
			name:  "TwoChains",
			edges: [][2]string{{"A", "B"}, {"C", "D"}, {"B", "E"}},
			want:  [][]string{{"A", "B", "E"}, {"C", "D"}},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := buildGraph(t, tc.edges, tc.isolated...)
			comps, err := bfs.Components(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, comps)
		})
	}
}

func TestComponents_NilGraph(t *testing.T) {
	_, err := bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}
