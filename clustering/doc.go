// Package clustering computes local, global and average clustering
// coefficients of an undirected core.View.
//
// For a vertex v with neighbor set N(v) and degree k = |N(v)|, define
//
//	links(v) = |{(n1, n2) : n1 ∈ N(v), n2 ∈ N(n1), n2 ∈ N(v)}|
//
// i.e. ordered neighbor pairs that are themselves adjacent. Then
//
//	Local(v)  = links(v) / (k·(k-1))          (0 when k < 2)
//	Global    = Σ links(v) / Σ k·(k-1)        (0 when the sum is 0)
//	Average   = mean of Local over all vertices (0 on an empty graph)
//
// Both orderings of a neighbor pair are counted, so a triangle scores 1.0.
// Self-loops are not special-cased: a looped vertex lists itself as a
// neighbor and may score above 1.0.
package clustering
