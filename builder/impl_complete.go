// SPDX-License-Identifier: MIT
// Package: clubgraph/builder
//
// impl_complete.go - complete graph K_n.
//
// Canonical model:
//   - Vertices: 0..n-1 mapped via cfg.idFn.
//   - Edges: every unordered pair {i, j}, i < j.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/clubgraph/core"
)

const (
	methodComplete = "Complete"
	minCompleteN   = 1
)

// Complete returns a Constructor that builds K_n.
// n == 1 yields a single isolated vertex.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteN, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.AddEdge(cfg.idFn(i), cfg.idFn(j))
			}
		}

		return nil
	}
}
