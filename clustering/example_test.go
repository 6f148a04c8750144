package clustering_test

import (
	"fmt"

	"github.com/katalvlaran/clubgraph/clustering"
	"github.com/katalvlaran/clubgraph/core"
)

// ExampleLocal computes coefficients on a triangle with one pendant vertex.
func ExampleLocal() {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")
	g.AddEdge("C", "D")

	c, _ := clustering.Local(g, "C")
	fmt.Printf("local(C)=%.3f global=%.3f average=%.3f\n",
		c, clustering.Global(g), clustering.Average(g))
	// Output:
	// local(C)=0.333 global=0.600 average=0.583
}
