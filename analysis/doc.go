// Package analysis computes degree statistics, a local densest-subgraph
// heuristic and gonum-backed centrality scores over a core.View.
//
// What
//
//   - DegreeDistribution: degree -> number of vertices with that degree.
//   - AverageDegree:      mean vertex degree, 0 on an empty graph.
//   - DensestSubgraph:    best 1-hop ego-network by edges/vertices.
//   - Summarize:          one-shot structural summary (counts, extremes, density).
//   - PageRank / Betweenness / TopK: centrality through gonum's network package.
//
// Determinism
//
//	Vertices are scanned in the order View.Vertices returns them; for
//	core.Graph that is ascending by ID. DensestSubgraph keeps the first
//	candidate among equal densities, so its answer is reproducible.
//
// DensestSubgraph is a heuristic: it only inspects the closed neighborhood
// {v} ∪ N(v) of each vertex and can miss denser sets that are not
// ego-networks. It is not an exact densest-subgraph algorithm.
//
// Complexity (V vertices, E edges, Δ max degree)
//
//   - DegreeDistribution, AverageDegree, Summarize: O(V + E)
//   - DensestSubgraph:                              O(V·Δ²·log Δ)
//   - PageRank:                                     O(iter·(V + E))
//   - Betweenness:                                  O(V·E)
//
// Analyzers never mutate the graph.
package analysis
