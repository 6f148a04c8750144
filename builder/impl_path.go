// SPDX-License-Identifier: MIT
// Package: clubgraph/builder
//
// impl_path.go - path P_n.
//
// Canonical model:
//   - Vertices: 0..n-1 mapped via cfg.idFn.
//   - Edges: (i, i+1) for i=0..n-2.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/clubgraph/core"
)

const (
	methodPath = "Path"
	minPathN   = 2
)

// Path returns a Constructor that builds a simple path of n vertices.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathN, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n-1; i++ {
			g.AddEdge(cfg.idFn(i), cfg.idFn(i+1))
		}

		return nil
	}
}
