package bfs_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/clubgraph/bfs"
	"github.com/katalvlaran/clubgraph/core"
)

// ExampleShortestPath finds the fewest-hop route in a network with two
// competing routes from "A" to "K": one of length 4, another of length 3.
func ExampleShortestPath() {
	g := core.NewGraph()
	// Route1: A–B–C–D–K (4 hops)
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "D")
	g.AddEdge("D", "K")
	// Route2: A–E–F–K (3 hops)
	g.AddEdge("A", "E")
	g.AddEdge("E", "F")
	g.AddEdge("F", "K")
	// Extra branches
	g.AddEdge("C", "G")
	g.AddEdge("D", "I")

	path, err := bfs.ShortestPath(g, "A", "K")
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [A E F K]
}

// ExampleSearch connects two players who never shared a club through a
// common teammate. The relation is derived from club membership only.
func ExampleSearch() {
	club := map[string]string{"ann": "red", "bob": "red", "cat": "blue", "dan": "blue"}
	// bob later moved; model the second spell as a second membership.
	spells := map[string][]string{"bob": {"blue"}}

	teammates := func(id string) ([]string, error) {
		clubs := append([]string{club[id]}, spells[id]...)
		var out []string
		for _, name := range []string{"ann", "bob", "cat", "dan"} {
			for _, c := range clubs {
				if club[name] == c || contains(spells[name], c) {
					out = append(out, name)
					break
				}
			}
		}
		return out, nil
	}

	path, _ := bfs.Search("ann", "dan", teammates)
	fmt.Println(path)

	_, err := bfs.Search("ann", "zed", teammates)
	fmt.Println(errors.Is(err, bfs.ErrNotFound))
	// Output:
	// [ann bob dan]
	// true
}

// ExampleWalk_depthLimit applies WithMaxDepth to a chain of 10 vertices.
func ExampleWalk_depthLimit() {
	g := core.NewGraph()
	for i := 0; i < 9; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}

	res, err := bfs.WalkGraph(g, "v0", bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [v0 v1 v2]
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
