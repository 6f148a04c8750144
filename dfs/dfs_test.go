package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clubgraph/builder"
	"github.com/katalvlaran/clubgraph/core"
	"github.com/katalvlaran/clubgraph/dfs"
)

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	var typedNil *core.Graph
	_, err = dfs.DFS(typedNil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(core.NewGraph(), "A")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_PreOrder(t *testing.T) {
	// A - B - D
	// |
	// C - E
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "D")
	g.AddEdge("A", "C")
	g.AddEdge("C", "E")

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, res.Order)
	assert.Equal(t, 2, res.Depth["D"])
	assert.Equal(t, 2, res.Depth["E"])
}

func TestDFS_LongPathNoRecursion(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(50000))
	require.NoError(t, err)

	res, err := dfs.DFS(g, "0")
	require.NoError(t, err)
	assert.Len(t, res.Order, 50000)
}

func TestDFS_HookAbortAndCancel(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)

	stop := errors.New("stop")
	_, err = dfs.DFS(g, "0", dfs.WithOnVisit(func(id string, _ int) error {
		if id == "1" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, "0", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		builder.Prefixed("b", builder.Path(2)),
		builder.Prefixed("a", builder.Cycle(3)),
		builder.Prefixed("c", builder.Path(2)),
	)
	require.NoError(t, err)
	g.AddVertex("z")

	assert.Equal(t, [][]string{
		{"a0", "a1", "a2"},
		{"b0", "b1"},
		{"c0", "c1"},
		{"z"},
	}, dfs.Components(g))

	assert.Empty(t, dfs.Components(core.NewGraph()))
}
