package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/crndecomp/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Undirected, unweighted by default; individual tests may override
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexIdempotent() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("R1"))

	require.NoError(s.g.AddVertex("R1"))
	require.NoError(s.g.AddVertex("R1"))
	require.True(s.g.HasVertex("R1"))
	require.Equal(1, s.g.VertexCount())

	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
	require.False(s.g.HasVertex(""))
}

func (s *GraphSuite) TestVertexMetadataIsLive() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("R3"))

	v, err := s.g.Vertex("R3")
	require.NoError(err)
	v.Metadata["reaction"] = 2

	again, err := s.g.Vertex("R3")
	require.NoError(err)
	require.Equal(2, again.Metadata["reaction"])

	_, err = s.g.Vertex("R9")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestAddEdgeUndirectedMirrors() {
	require := require.New(s.T())

	eid, err := s.g.AddEdge("R1", "R2", 0)
	require.NoError(err)
	require.Equal("e1", eid)
	require.True(s.g.HasEdge("R1", "R2"))
	require.True(s.g.HasEdge("R2", "R1"))
	require.Equal(1, s.g.EdgeCount())

	_, err = s.g.AddEdge("R2", "R1", 0)
	require.ErrorIs(err, core.ErrMultiEdgeNotAllowed)

	_, err = s.g.AddEdge("R1", "R1", 0)
	require.ErrorIs(err, core.ErrLoopNotAllowed)

	_, err = s.g.AddEdge("R1", "R3", 5)
	require.ErrorIs(err, core.ErrBadWeight)
}

func (s *GraphSuite) TestDirectedNeighbors() {
	require := require.New(s.T())
	s.g = core.NewGraph(core.WithDirected(true), core.WithWeighted())

	_, err := s.g.AddEdge("A", "B", 3)
	require.NoError(err)
	_, err = s.g.AddEdge("C", "A", 1)
	require.NoError(err)

	ids, err := s.g.NeighborIDs("A")
	require.NoError(err)
	require.Equal([]string{"B"}, ids)
	require.False(s.g.HasEdge("B", "A"))
	require.True(s.g.Directed())
	require.True(s.g.Weighted())

	_, err = s.g.Neighbors("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestDeterministicEnumeration() {
	require := require.New(s.T())
	for _, pair := range [][2]string{{"R3", "R1"}, {"R2", "R1"}, {"R10", "R2"}} {
		_, err := s.g.AddEdge(pair[0], pair[1], 0)
		require.NoError(err)
	}

	require.Equal([]string{"R1", "R10", "R2", "R3"}, s.g.Vertices())

	ids, err := s.g.NeighborIDs("R1")
	require.NoError(err)
	require.Equal([]string{"R2", "R3"}, ids)

	edges := s.g.Edges()
	require.Len(edges, 3)
	require.Equal("e1", edges[0].ID)
	require.Equal("R3", edges[0].From)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = g.AddEdge("hub", fmt.Sprintf("R%d", i), 0)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n+1, g.VertexCount())
	assert.Equal(t, n, g.EdgeCount())
	nbrs, err := g.NeighborIDs("hub")
	require.NoError(t, err)
	assert.Len(t, nbrs, n)
}
