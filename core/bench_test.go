package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/clubgraph/core"
)

// BenchmarkAddEdge measures insertion into a growing star.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g.AddEdge("hub", strconv.Itoa(i))
	}
}

// BenchmarkNeighborIDs measures the sorted copy on a 1000-neighbor vertex.
func BenchmarkNeighborIDs(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		g.AddEdge("hub", strconv.Itoa(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.NeighborIDs("hub")
	}
}
