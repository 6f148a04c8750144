package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clubgraph/analysis"
	"github.com/katalvlaran/clubgraph/builder"
	"github.com/katalvlaran/clubgraph/core"
)

func TestDegreeDistribution_Triangle(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, map[int]int{2: 3}, analysis.DegreeDistribution(g))
}

func TestDegreeDistribution_Star(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Star(5))
	require.NoError(t, err)
	dist := analysis.DegreeDistribution(g)
	assert.Equal(t, map[int]int{1: 4, 4: 1}, dist)

	sum := 0
	for _, c := range dist {
		sum += c
	}
	assert.Equal(t, g.VertexCount(), sum)
}

func TestDegreeDistribution_Empty(t *testing.T) {
	assert.Empty(t, analysis.DegreeDistribution(core.NewGraph()))
}

func TestAverageDegree(t *testing.T) {
	assert.Equal(t, 0.0, analysis.AverageDegree(core.NewGraph()))

	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	assert.InDelta(t, 4.0/3.0, analysis.AverageDegree(g), 1e-9)

	k4, err := builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 3.0, analysis.AverageDegree(k4))
}

func TestAverageDegree_Idempotent(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	before := analysis.AverageDegree(g)
	g.AddEdge("A", "B")
	g.AddEdge("B", "A")
	assert.Equal(t, before, analysis.AverageDegree(g))
	assert.Equal(t, map[int]int{1: 2}, analysis.DegreeDistribution(g))
}

func TestSortedDegrees(t *testing.T) {
	assert.Equal(t, []int{0, 1, 3, 7}, analysis.SortedDegrees(map[int]int{7: 1, 0: 2, 3: 1, 1: 5}))
	assert.Empty(t, analysis.SortedDegrees(nil))
}
