// SPDX-License-Identifier: MIT
// Package: clubgraph/builder
//
// impl_star.go - star S_n.
//
// Canonical model:
//   - Hub: index 0 mapped via cfg.idFn.
//   - Leaves: indices 1..n-1, each joined to the hub only.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/clubgraph/core"
)

const (
	methodStar = "Star"
	minStarN   = 2
)

// Star returns a Constructor that builds a star of n vertices in total.
// The hub is cfg.idFn(0).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarN, ErrTooFewVertices)
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			g.AddEdge(hub, cfg.idFn(i))
		}

		return nil
	}
}
