// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, AdjacencyList) and set conversion helpers.
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - AdjacencyList() per-vertex slices are sorted lex asc.
// Concurrency:
//   - Read operations hold the read lock; returned slices never alias internal state.

package core

import "github.com/emirpasic/gods/sets/treeset"

// NeighborIDs returns the neighbor set of id, sorted lexicographically ascending.
//
// Behavior highlights:
//   - Unique IDs (sets never hold duplicates).
//   - A self-loop on id lists id itself exactly once.
//   - The returned slice is a fresh copy; callers may modify it.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d) time and space.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if g == nil {
		return nil, ErrVertexNotFound
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return setToStrings(nbrs), nil
}

// AdjacencyList returns a deep snapshot vertex → sorted neighbor IDs.
// Isolated vertices map to an empty, non-nil slice.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	if g == nil {
		return map[string][]string{}
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		out[id] = setToStrings(nbrs)
	}

	return out
}

// setToStrings copies an ordered string set into a slice, preserving order.
func setToStrings(s *treeset.Set) []string {
	out := make([]string, 0, s.Size())
	for _, v := range s.Values() {
		out = append(out, v.(string))
	}

	return out
}
