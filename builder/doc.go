// Package builder provides deterministic graph fixtures for tests, examples
// and benchmarks of the analyzers.
//
// The package offers:
//
//   - Constructor:   func(g *core.Graph, cfg builderConfig) error
//   - BuildGraph:    create a core.Graph and apply constructors in order.
//   - Topologies:    Path(n), Cycle(n), Complete(n), Star(n).
//   - Composition:   Prefixed(prefix, c) scopes a constructor's vertex IDs,
//     so several shapes can live side by side in one graph.
//   - Vertex-ID schemes (IDFn):
//   - DefaultIDFn:       decimal strings ("0","1",…).
//   - SymbolIDFn:        single letters ("A","B",…).
//   - ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//   - SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//
// Guarantees:
//
//   - Idempotent: re-running a constructor on the same graph adds nothing,
//     because core.Graph.AddEdge is idempotent.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrConstructFailed) for invalid
//     build parameters, wrapped with the constructor name.
package builder
