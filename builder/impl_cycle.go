// SPDX-License-Identifier: MIT
// Package: clubgraph/builder
//
// impl_cycle.go - cycle C_n.
//
// Canonical model:
//   - Vertices: 0..n-1 mapped via cfg.idFn.
//   - Edges: (i, (i+1) mod n).
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/clubgraph/core"
)

const (
	methodCycle = "Cycle"
	minCycleN   = 3
)

// Cycle returns a Constructor that builds a simple cycle of n vertices.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleN, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}
