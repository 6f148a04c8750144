// Package clubgraph is an in-memory analytics engine for undirected,
// unweighted graphs, shipped with a command-line explorer for football
// player data.
//
// Packages:
//
//	core/        thread-safe Graph store and the read-only View analyzers consume
//	bfs/         shortest paths over a graph or over any neighbor relation
//	dfs/         iterative depth-first search and connected components
//	analysis/    degree distribution, average degree, densest ego-network,
//	             summary statistics and gonum-backed centrality
//	clustering/  local, global and average clustering coefficients
//	builder/     deterministic fixtures (path, cycle, complete, star)
//	roster/      CSV player ingestion and the club teammate relation
//	report/      terminal rendering of comparisons, paths and statistics
//	cmd/clubgraph  cobra CLI with an interactive prompt
//
// Quick start:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B")
//	g.AddEdge("B", "C")
//	path, _ := bfs.ShortestPath(g, "A", "C")      // [A B C]
//	avg := analysis.AverageDegree(g)              // 1.333…
//	cc := clustering.Global(g)                    // 0
package clubgraph
