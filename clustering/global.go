package clustering

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/clubgraph/core"
)

// Global returns Σ links(v) / Σ k(v)(k(v)-1) over all vertices,
// or 0 if no vertex has degree ≥ 2.
func Global(g core.View) float64 {
	var num, den int
	for _, id := range g.Vertices() {
		links, k, err := triangleLinks(g, id)
		if err != nil {
			continue
		}
		num += links
		den += k * (k - 1)
	}
	if den == 0 {
		return 0
	}

	return float64(num) / float64(den)
}

// Average returns the arithmetic mean of Local over every vertex,
// or 0 on an empty graph.
func Average(g core.View) float64 {
	ids := g.Vertices()
	if len(ids) == 0 {
		return 0
	}
	values := make([]float64, 0, len(ids))
	for _, id := range ids {
		c, err := Local(g, id)
		if err != nil {
			continue
		}
		values = append(values, c)
	}
	if len(values) == 0 {
		return 0
	}

	return stat.Mean(values, nil)
}
