package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/clubgraph/core"
)

type AdjacencySuite struct {
	suite.Suite
	g *core.Graph
}

func (s *AdjacencySuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *AdjacencySuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"), "empty graph should not have A")

	s.g.AddVertex("A")
	require.True(s.g.HasVertex("A"), "graph should have A after AddVertex")

	// Idempotence: adding again does not change count
	s.g.AddVertex("A")
	require.Equal(1, s.g.VertexCount(), "adding duplicate vertex should not increase count")

	deg, err := s.g.Degree("A")
	require.NoError(err)
	require.Zero(deg, "isolated vertex has degree 0")
}

func (s *AdjacencySuite) TestAddEdgeIsSymmetric() {
	require := require.New(s.T())
	s.g.AddEdge("A", "B")

	require.True(s.g.HasVertex("A") && s.g.HasVertex("B"), "AddEdge should auto-add vertices")
	require.True(s.g.HasEdge("A", "B"), "expected edge A-B")
	require.True(s.g.HasEdge("B", "A"), "expected mirror B-A")
	require.Equal(1, s.g.EdgeCount())
}

func (s *AdjacencySuite) TestAddEdgeIdempotent() {
	require := require.New(s.T())
	s.g.AddEdge("A", "B")
	s.g.AddEdge("A", "B")
	s.g.AddEdge("B", "A")

	nb, err := s.g.NeighborIDs("A")
	require.NoError(err)
	require.Equal([]string{"B"}, nb, "re-adding an edge must not duplicate neighbors")
	require.Equal(1, s.g.EdgeCount())
}

func (s *AdjacencySuite) TestNeighborsSortedAndCopied() {
	require := require.New(s.T())
	s.g.AddEdge("X", "c")
	s.g.AddEdge("X", "a")
	s.g.AddEdge("X", "b")

	nb, err := s.g.NeighborIDs("X")
	require.NoError(err)
	require.Equal([]string{"a", "b", "c"}, nb)

	// Mutating the result must not leak into the graph.
	nb[0] = "zzz"
	again, _ := s.g.NeighborIDs("X")
	require.Equal([]string{"a", "b", "c"}, again)
}

func (s *AdjacencySuite) TestSelfLoop() {
	require := require.New(s.T())
	s.g.AddEdge("A", "A")
	s.g.AddEdge("A", "B")

	nb, err := s.g.NeighborIDs("A")
	require.NoError(err)
	require.Equal([]string{"A", "B"}, nb, "self-loop lists the vertex once")

	deg, err := s.g.Degree("A")
	require.NoError(err)
	require.Equal(2, deg, "loop counts once toward degree")
	require.Equal(2, s.g.EdgeCount())
}

func (s *AdjacencySuite) TestMissingVertex() {
	require := require.New(s.T())
	_, err := s.g.NeighborIDs("ghost")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Degree("ghost")
	require.ErrorIs(err, core.ErrVertexNotFound)
	require.False(s.g.HasEdge("ghost", "A"))
}

func (s *AdjacencySuite) TestAdjacencyListSnapshot() {
	require := require.New(s.T())
	s.g.AddEdge("A", "B")
	s.g.AddVertex("Z")

	adj := s.g.AdjacencyList()
	require.Equal(map[string][]string{
		"A": {"B"},
		"B": {"A"},
		"Z": {},
	}, adj)

	adj["A"] = append(adj["A"], "Q")
	require.False(s.g.HasEdge("A", "Q"), "snapshot must be independent")
}

func TestAdjacencySuite(t *testing.T) {
	suite.Run(t, new(AdjacencySuite))
}
