package analysis

import (
	"sort"

	"github.com/katalvlaran/clubgraph/core"
)

// DegreeDistribution maps each degree to the number of vertices having it.
// Vertices enumerated by g but failing Degree are skipped.
//
// The values always sum to g.VertexCount() for a consistent View.
func DegreeDistribution(g core.View) map[int]int {
	dist := make(map[int]int)
	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		if err != nil {
			continue
		}
		dist[d]++
	}

	return dist
}

// AverageDegree returns Σdeg(v) / |V|, or 0 when the graph is empty.
func AverageDegree(g core.View) float64 {
	ids := g.Vertices()
	if len(ids) == 0 {
		return 0
	}
	total := 0
	for _, id := range ids {
		d, err := g.Degree(id)
		if err != nil {
			continue
		}
		total += d
	}

	return float64(total) / float64(len(ids))
}

// SortedDegrees returns the keys of dist in ascending order.
func SortedDegrees(dist map[int]int) []int {
	keys := make([]int, 0, len(dist))
	for d := range dist {
		keys = append(keys, d)
	}
	sort.Ints(keys)

	return keys
}
