// Package bfs provides breadth-first search over an arbitrary neighbor
// relation, returning unweighted shortest paths, distances, parent links
// and visit order.
//
// What
//
//   - ShortestPath(g, start, end): one shortest path over the literal edges
//     of a core.View. Both endpoints must exist.
//   - Search(start, end, nbrs): the same traversal over any NeighborFunc,
//     e.g. "players sharing a club with id". No edges need to exist.
//   - Walk / WalkGraph: full traversal returning a Result with
//     Order, Depth and Parent, plus Result.PathTo(dest).
//   - Functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Neighbor filtering via WithFilterNeighbor and a MaxDepth limit.
//
// Why
//
//   - Unweighted shortest paths in O(V + E).
//   - One traversal implementation for literal-edge and attribute-derived
//     connectivity: the relation is a capability (NeighborFunc) rather than
//     a hard-wired adjacency structure.
//
// Determinism
//
//	Neighbors are enqueued in the order the NeighborFunc returns them.
//	core.Graph returns neighbors sorted ascending, so ShortestPath picks the
//	lexicographically earliest-discovered path among equal-length ones.
//	Callers should still not depend on a particular tie-break.
//
// Complexity (V = vertices reached, E = relation pairs examined)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth map, Parent map)
//
// Usage
//
//	path, err := bfs.ShortestPath(g, "a", "c")
//	if errors.Is(err, bfs.ErrNotFound) {
//	    // endpoint missing or no path
//	}
//
//	path, err = bfs.Search("messi", "neymar", roster.Teammates)
//
// Errors
//
//   - ErrNotFound             umbrella: matches the three below via errors.Is.
//   - ErrStartVertexNotFound  start is absent from the graph.
//   - ErrEndVertexNotFound    end is absent from the graph.
//   - ErrNoPath               end is unreachable.
//   - ErrGraphNil             nil graph, including a nil *core.Graph.
//   - ErrNilNeighborFunc      nil relation.
//   - ErrOptionViolation      invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            the NeighborFunc failed.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
