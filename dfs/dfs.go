package dfs

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/clubgraph/core"
)

type frame struct {
	id    string
	depth int
}

// DFS walks g from startID in pre-order. Neighbors are pushed in reverse
// enumeration order so that, for core.Graph, the smallest neighbor is
// explored first.
func DFS(g core.View, startID string, opts ...Option) (*Result, error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &Result{Order: []string{}, Depth: make(map[string]int)}
	if err := walk(g, startID, o, res); err != nil {
		return nil, err
	}

	return res, nil
}

// walk runs one tree of the traversal, adding to res. Vertices already in
// res.Depth are treated as visited.
func walk(g core.View, root string, o Options, res *Result) error {
	stack := arraystack.New()
	stack.Push(frame{id: root})
	for !stack.Empty() {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}

		v, _ := stack.Pop()
		f := v.(frame)
		if _, seen := res.Depth[f.id]; seen {
			continue
		}
		res.Depth[f.id] = f.depth
		res.Order = append(res.Order, f.id)
		if err := o.OnVisit(f.id, f.depth); err != nil {
			return fmt.Errorf("dfs: OnVisit error at %q: %w", f.id, err)
		}

		nbrs, err := g.NeighborIDs(f.id)
		if err != nil {
			return err
		}
		for i := len(nbrs) - 1; i >= 0; i-- {
			if _, seen := res.Depth[nbrs[i]]; !seen {
				stack.Push(frame{id: nbrs[i], depth: f.depth + 1})
			}
		}
	}

	return nil
}
