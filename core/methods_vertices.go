// File: methods_vertices.go
// Role: Vertex lifecycle and queries: AddVertex/HasVertex/Vertices/VertexCount/Degree.
// Determinism:
//   - Vertices() returns IDs sorted lex asc.
// Concurrency:
//   - AddVertex under write lock; queries under read lock.

package core

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
)

// AddVertex inserts an isolated vertex if absent. Idempotent.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)
}

// HasVertex reports whether id exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if g == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	if g == nil {
		return []string{}
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the size of id's neighbor set. A self-loop counts once.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if g == nil {
		return 0, ErrVertexNotFound
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return nbrs.Size(), nil
}

// ensureVertex returns id's neighbor set, creating it if needed.
// Caller must hold the write lock.
func (g *Graph) ensureVertex(id string) *treeset.Set {
	nbrs, ok := g.adjacency[id]
	if !ok {
		nbrs = neighborSet()
		g.adjacency[id] = nbrs
	}

	return nbrs
}
