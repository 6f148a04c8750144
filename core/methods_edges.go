// File: methods_edges.go
// Role: Edge insertion and edge queries: AddEdge/HasEdge/EdgeCount.
// Determinism:
//   - Insertion order never affects later enumeration (sets are ordered).
// Concurrency:
//   - AddEdge holds the write lock for both directions.
//   - Read queries hold the read lock.

package core

// AddEdge connects u and v.
//
// Steps:
//  1. Lock mu for writing.
//  2. Ensure both endpoints exist.
//  3. If v is already in N(u) the edge exists; return.
//  4. Add v to N(u) and u to N(v); for u == v this is one insertion.
//
// Identifiers are not validated. AddEdge is idempotent and never fails.
// Complexity: O(log d) for the two ordered-set insertions.
func (g *Graph) AddEdge(u, v string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	nu := g.ensureVertex(u)
	nv := g.ensureVertex(v)
	if nu.Contains(v) {
		return
	}
	nu.Add(v)
	nv.Add(u)
	g.edgeCount++
}

// HasEdge reports whether u and v are adjacent.
// Symmetric by construction: HasEdge(u,v) == HasEdge(v,u).
// Complexity: O(log d).
func (g *Graph) HasEdge(u, v string) bool {
	if g == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[u]
	if !ok {
		return false
	}

	return nbrs.Contains(v)
}

// EdgeCount returns the number of undirected edges. A self-loop counts once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
