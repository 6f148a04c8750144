package analysis

import (
	"github.com/katalvlaran/clubgraph/core"
	"github.com/katalvlaran/clubgraph/dfs"
)

// Summary aggregates the headline numbers of a graph.
type Summary struct {
	Vertices      int
	Edges         int
	MinDegree     int
	MaxDegree     int
	AverageDegree float64
	Isolated      int
	// EdgeDensity is 2E / (V(V-1)); 0 when V < 2.
	EdgeDensity float64

	Components       int
	LargestComponent int
}

// Summarize computes a Summary with one pass over g plus a component sweep.
// A self-loop counts as one edge, matching core.Graph.EdgeCount.
func Summarize(g core.View) Summary {
	var s Summary
	total := 0
	first := true
	for _, id := range g.Vertices() {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			continue
		}
		s.Vertices++
		d := len(nbrs)
		total += d
		if d == 0 {
			s.Isolated++
		}
		if first || d < s.MinDegree {
			s.MinDegree = d
		}
		if first || d > s.MaxDegree {
			s.MaxDegree = d
		}
		first = false
		for _, n := range nbrs {
			if id <= n {
				s.Edges++
			}
		}
	}
	if s.Vertices > 0 {
		s.AverageDegree = float64(total) / float64(s.Vertices)
	}
	if s.Vertices > 1 {
		s.EdgeDensity = 2 * float64(s.Edges) / float64(s.Vertices*(s.Vertices-1))
	}
	comps := dfs.Components(g)
	s.Components = len(comps)
	if len(comps) > 0 {
		s.LargestComponent = len(comps[0])
	}

	return s
}
