// Package core defines the central Graph type and the read-only View that
// analyzers consume.
//
// This file declares the View interface, sentinel errors, the Graph struct
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
)

// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
var ErrVertexNotFound = errors.New("core: vertex not found")

// View is the read-only surface shared by every analyzer.
//
// Implementations MUST keep adjacency symmetric (v ∈ N(u) ⇔ u ∈ N(v)) and
// SHOULD enumerate identifiers deterministically.
type View interface {
	// Vertices returns every vertex identifier.
	Vertices() []string

	// HasVertex reports whether id is present.
	HasVertex(id string) bool

	// NeighborIDs returns the neighbor set of id, or ErrVertexNotFound.
	NeighborIDs(id string) ([]string, error)

	// Degree returns |N(id)|, or ErrVertexNotFound.
	Degree(id string) (int, error)

	// VertexCount returns |V|.
	VertexCount() int
}

// Graph is an undirected, unweighted, append-only adjacency structure.
//
// Read methods are safe on a nil *Graph and behave as on an empty graph;
// mutation methods require a graph from NewGraph.
//
// mu guards adjacency and edgeCount. Each neighbor set is a gods treeset
// ordered by string comparison.
type Graph struct {
	mu sync.RWMutex

	// adjacency[vertex] = ordered set of neighbor IDs
	adjacency map[string]*treeset.Set

	// edgeCount counts undirected edges; a self-loop counts once.
	edgeCount int
}

var _ View = (*Graph)(nil)

// IsNil reports whether v is nil or wraps a nil *Graph.
func IsNil(v View) bool {
	if v == nil {
		return true
	}
	g, ok := v.(*Graph)

	return ok && g == nil
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]*treeset.Set),
	}
}

// FromAdjacency builds a Graph from a raw adjacency mapping.
//
// Every (key, neighbor) pair is inserted through AddEdge, so asymmetric input
// is symmetrized and duplicate neighbors collapse. Keys with an empty list
// become isolated vertices.
//
// Complexity: O(V + E·log d).
func FromAdjacency(adj map[string][]string) *Graph {
	g := NewGraph()
	for id, nbrs := range adj {
		g.AddVertex(id)
		for _, nbr := range nbrs {
			g.AddEdge(id, nbr)
		}
	}

	return g
}

// neighborSet returns a fresh ordered set for a newly seen vertex.
func neighborSet() *treeset.Set {
	return treeset.NewWithStringComparator()
}
