package analysis

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/clubgraph/core"
)

// Subgraph is a vertex subset together with its density
// (internal edges divided by vertex count).
type Subgraph struct {
	Vertices []string
	Density  float64
}

// DensestSubgraph returns the densest closed 1-hop neighborhood in g.
//
// Steps:
//  1. For each vertex v in enumeration order, form C = {v} ∪ N(v).
//  2. Count internal edges: Σ_{x∈C} |N(x) ∩ C|, halved in integer
//     arithmetic. A self-loop contributes one pair, so alone it rounds to
//     no edge.
//  3. density(C) = edges / |C|.
//  4. Replace the best only when density is strictly greater.
//
// The best density starts at 0, so an empty or edgeless graph returns an
// empty Subgraph with Density 0. Vertices are listed in ascending order.
func DensestSubgraph(g core.View) Subgraph {
	best := Subgraph{Vertices: []string{}}
	for _, v := range g.Vertices() {
		cand, err := closedNeighborhood(g, v)
		if err != nil {
			continue
		}
		edges := internalEdges(g, cand) / 2
		density := float64(edges) / float64(cand.Size())
		if density > best.Density {
			best = Subgraph{Vertices: setValues(cand), Density: density}
		}
	}

	return best
}

// closedNeighborhood returns {v} ∪ N(v) as an ordered set.
func closedNeighborhood(g core.View, v string) (*treeset.Set, error) {
	nbrs, err := g.NeighborIDs(v)
	if err != nil {
		return nil, err
	}
	cand := treeset.NewWithStringComparator(v)
	for _, n := range nbrs {
		cand.Add(n)
	}

	return cand, nil
}

// internalEdges counts ordered pairs (x, y) with x, y ∈ cand and y ∈ N(x).
// Each undirected edge between two members is seen twice.
func internalEdges(g core.View, cand *treeset.Set) int {
	count := 0
	it := cand.Iterator()
	for it.Next() {
		nbrs, err := g.NeighborIDs(it.Value().(string))
		if err != nil {
			continue
		}
		for _, n := range nbrs {
			if cand.Contains(n) {
				count++
			}
		}
	}

	return count
}

func setValues(s *treeset.Set) []string {
	out := make([]string, 0, s.Size())
	for _, v := range s.Values() {
		out = append(out, v.(string))
	}

	return out
}
