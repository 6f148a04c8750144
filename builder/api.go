// SPDX-License-Identifier: MIT
// Package: clubgraph/builder
//
// api.go - public contract for graph fixtures.
//
// Contract:
//   - A Constructor mutates an existing *core.Graph in place.
//   - Constructors validate their own parameters and return sentinel errors
//     wrapped with context ("<Method>: …: %w").
//   - Vertex IDs come from cfg.idFn only; no randomness is involved.

package builder

import (
	"fmt"

	"github.com/katalvlaran/clubgraph/core"
)

// Constructor applies one topology to g using the resolved configuration.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves bopts into a builderConfig
// and applies every constructor in order. The first failing constructor
// aborts the build.
//
// Example:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSymbolIDs()},
//	    builder.Cycle(4),
//	)
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g := core.NewGraph()
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("BuildGraph: constructor #%d is nil: %w", i, ErrConstructFailed)
		}
		if err := c(g, cfg); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Prefixed runs c with every generated ID prefixed by prefix, so that two
// shapes built in the same graph stay disjoint.
//
//	builder.BuildGraph(nil, builder.Prefixed("a", builder.Complete(3)),
//	                        builder.Prefixed("b", builder.Complete(3)))
func Prefixed(prefix string, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Prefixed(%q): nil constructor: %w", prefix, ErrConstructFailed)
		}
		inner := cfg.idFn
		cfg.idFn = func(idx int) string { return prefix + inner(idx) }

		return c(g, cfg)
	}
}
