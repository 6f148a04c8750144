package bfs

import (
	"fmt"

	"github.com/katalvlaran/clubgraph/core"
)

// Search finds one shortest path from start to end over the relation nbrs.
//
// The walk stops as soon as end is dequeued and the path is rebuilt from
// the predecessor map. start == end yields [start] without consulting nbrs.
// An unreachable end yields ErrNoPath. The relation has no vertex set of
// its own, so endpoint membership is the caller's responsibility.
//
// Complexity: O(V + E) over the part of the relation that is explored.
func Search(start, end string, nbrs NeighborFunc, opts ...Option) ([]string, error) {
	w, err := newWalker(nbrs, opts)
	if err != nil {
		return nil, err
	}
	w.target, w.hasTarget = end, true
	w.enqueue(start, 0, "", false)

	if err = w.loop(); err != nil {
		return nil, err
	}
	if !w.found {
		return nil, fmt.Errorf("%w from %q to %q", ErrNoPath, start, end)
	}

	return w.res.PathTo(end)
}

// ShortestPath returns the vertex sequence of one shortest path from start
// to end in g, inclusive of both endpoints.
//
// Errors (all wrap ErrNotFound except ErrGraphNil):
//   - ErrStartVertexNotFound / ErrEndVertexNotFound: endpoint absent; no traversal runs.
//   - ErrNoPath: endpoints lie in different components.
//
// Ties between equally short paths resolve by neighbor enumeration order,
// which for core.Graph is ascending by ID.
func ShortestPath(g core.View, start, end string, opts ...Option) ([]string, error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: %q", ErrEndVertexNotFound, end)
	}

	return Search(start, end, GraphNeighbors(g), opts...)
}

// WalkGraph runs a full traversal of g from start.
// Returns ErrStartVertexNotFound if start is absent.
func WalkGraph(g core.View, start string, opts ...Option) (*Result, error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	return Walk(start, GraphNeighbors(g), opts...)
}
