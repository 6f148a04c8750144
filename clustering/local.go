package clustering

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/clubgraph/core"
)

// Local returns the clustering coefficient of v.
// Returns core.ErrVertexNotFound if v is absent, and 0 when deg(v) < 2.
//
// Complexity: O(Σ_{n∈N(v)} deg(n)).
func Local(g core.View, v string) (float64, error) {
	if !g.HasVertex(v) {
		return 0, fmt.Errorf("clustering: %q: %w", v, core.ErrVertexNotFound)
	}
	links, k, err := triangleLinks(g, v)
	if err != nil {
		return 0, err
	}
	if k < 2 {
		return 0, nil
	}

	return float64(links) / float64(k*(k-1)), nil
}

// All returns Local for every vertex of g.
func All(g core.View) map[string]float64 {
	out := make(map[string]float64)
	for _, id := range g.Vertices() {
		c, err := Local(g, id)
		if err != nil {
			continue
		}
		out[id] = c
	}

	return out
}

// triangleLinks returns links(v) and deg(v).
func triangleLinks(g core.View, v string) (links, k int, err error) {
	nbrs, err := g.NeighborIDs(v)
	if err != nil {
		return 0, 0, fmt.Errorf("clustering: %q: %w", v, err)
	}
	k = len(nbrs)
	if k < 2 {
		return 0, k, nil
	}
	set := hashset.New()
	for _, n := range nbrs {
		set.Add(n)
	}
	for _, n1 := range nbrs {
		second, err := g.NeighborIDs(n1)
		if err != nil {
			continue
		}
		for _, n2 := range second {
			if set.Contains(n2) {
				links++
			}
		}
	}

	return links, k, nil
}
