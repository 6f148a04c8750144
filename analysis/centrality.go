package analysis

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/clubgraph/core"
)

// ErrBadParameter is returned for PageRank arguments outside their domain.
var ErrBadParameter = errors.New("analysis: parameter out of range")

// Ranked is one entry of a TopK listing.
type Ranked struct {
	ID    string
	Score float64
}

// ToGonum copies g into a gonum simple.UndirectedGraph.
// Node IDs are assigned 0..V-1 in enumeration order; the returned map
// translates them back. Self-loops are skipped because simple graphs
// reject them.
func ToGonum(g core.View) (*simple.UndirectedGraph, map[int64]string) {
	ids := g.Vertices()
	out := simple.NewUndirectedGraph()
	index := make(map[string]int64, len(ids))
	names := make(map[int64]string, len(ids))
	for i, id := range ids {
		n := simple.Node(int64(i))
		out.AddNode(n)
		index[id] = n.ID()
		names[n.ID()] = id
	}
	for _, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			continue
		}
		for _, nb := range nbrs {
			if id >= nb {
				continue
			}
			to, ok := index[nb]
			if !ok {
				continue
			}
			out.SetEdge(simple.Edge{F: simple.Node(index[id]), T: simple.Node(to)})
		}
	}

	return out, names
}

// toDirected mirrors every undirected edge into both directions.
func toDirected(u *simple.UndirectedGraph) *simple.DirectedGraph {
	d := simple.NewDirectedGraph()
	nodes := u.Nodes()
	for nodes.Next() {
		d.AddNode(nodes.Node())
	}
	edges := u.Edges()
	for edges.Next() {
		e := edges.Edge()
		d.SetEdge(simple.Edge{F: e.From(), T: e.To()})
		d.SetEdge(simple.Edge{F: e.To(), T: e.From()})
	}

	return d
}

// PageRank scores every vertex of g with gonum's PageRank on the mirrored
// directed graph. damping must lie in (0, 1) and tolerance must be positive.
// An empty graph yields an empty map.
func PageRank(g core.View, damping, tolerance float64) (map[string]float64, error) {
	if damping <= 0 || damping >= 1 {
		return nil, fmt.Errorf("%w: damping=%v not in (0,1)", ErrBadParameter, damping)
	}
	if tolerance <= 0 {
		return nil, fmt.Errorf("%w: tolerance=%v must be > 0", ErrBadParameter, tolerance)
	}
	scores := make(map[string]float64)
	if g.VertexCount() == 0 {
		return scores, nil
	}
	ug, names := ToGonum(g)
	for id, s := range network.PageRank(toDirected(ug), damping, tolerance) {
		scores[names[id]] = s
	}

	return scores, nil
}

// Betweenness returns the betweenness centrality of every vertex.
// gonum reports only non-zero scores; the remaining vertices get 0.
func Betweenness(g core.View) map[string]float64 {
	ug, names := ToGonum(g)
	scores := make(map[string]float64, len(names))
	for _, name := range names {
		scores[name] = 0
	}
	for id, s := range network.Betweenness(ug) {
		scores[names[id]] = s
	}

	return scores
}

// TopK returns the k highest scores, ordered by score descending and then
// ID ascending. k <= 0 or k > len(scores) returns every entry.
func TopK(scores map[string]float64, k int) []Ranked {
	out := make([]Ranked, 0, len(scores))
	for id, s := range scores {
		out = append(out, Ranked{ID: id, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	if k > 0 && k < len(out) {
		out = out[:k]
	}

	return out
}
