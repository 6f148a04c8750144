// Package core provides the in-memory undirected Graph that every analyzer in
// clubgraph reads from.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted edges only.
//   - Neighbor sets are true sets: adding the same edge twice is a no-op.
//   - Append-only: vertices and edges are never removed.
//   - Self-loops are accepted; the vertex becomes its own neighbor once and
//     Degree counts the loop once.
//
// Storage:
//
//	adjacency[vertex] = treeset{neighbor, ...}   (gods treeset, string order)
//
// Because neighbor sets are ordered, Vertices() and NeighborIDs() always
// return identifiers in ascending lexicographic order. Traversals built on
// top of core (bfs, analysis, clustering) are therefore reproducible: the
// same graph always yields the same shortest path and the same densest
// ego-network, even when several candidates tie.
//
// Core Methods:
//
//	// Mutation (single entry point for edges)
//	AddEdge(u, v string)                    // O(log d)
//	AddVertex(id string)                    // O(1)
//
//	// Query
//	HasVertex(id string) bool               // O(1)
//	HasEdge(u, v string) bool               // O(log d)
//	Vertices() []string                     // O(V·log V)
//	NeighborIDs(id string) ([]string, error)// O(d)
//	Degree(id string) (int, error)          // O(1)
//	VertexCount() int                       // O(1)
//	EdgeCount() int                         // O(1)
//	AdjacencyList() map[string][]string     // O(V+E) deep snapshot
//
//	// Construction helpers
//	NewGraph() *Graph
//	FromAdjacency(adj map[string][]string) *Graph
//
// Read-only consumers should depend on the View interface rather than on
// *Graph; it exposes exactly the vertex enumeration, neighbor lookup and
// degree queries the analyzers need.
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency map. AddEdge writes both
//	directions of an edge under one write lock, so no reader can observe a
//	half-applied insertion.
//
// Errors:
//
//	ErrVertexNotFound – the referenced vertex is absent.
package core
