package dfs

import (
	"sort"

	"github.com/katalvlaran/clubgraph/core"
)

// Components partitions g into connected components.
//
// Each component is sorted ascending. Components are ordered by size
// descending, ties broken by their smallest member. Isolated vertices form
// singleton components.
func Components(g core.View) [][]string {
	res := &Result{Order: []string{}, Depth: make(map[string]int)}
	o := DefaultOptions()
	var comps [][]string
	for _, v := range g.Vertices() {
		if _, seen := res.Depth[v]; seen {
			continue
		}
		start := len(res.Order)
		if err := walk(g, v, o, res); err != nil {
			continue
		}
		comp := append([]string(nil), res.Order[start:]...)
		sort.Strings(comp)
		comps = append(comps, comp)
	}
	sort.SliceStable(comps, func(i, j int) bool {
		if len(comps[i]) != len(comps[j]) {
			return len(comps[i]) > len(comps[j])
		}
		return comps[i][0] < comps[j][0]
	})

	return comps
}
