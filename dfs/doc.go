// Package dfs implements iterative depth-first search and connected
// components over a core.View.
//
// Key features:
//   - DFS(g, startID, opts...): pre-order traversal from one root.
//   - Components(g): every connected component, each sorted, ordered by
//     size descending then by smallest member.
//   - Hooks: OnVisit (pre-order) with error aborts.
//   - Cancellation via context.Context.
//
// The traversal keeps an explicit gods arraystack instead of recursing, so a
// long path of teammates cannot exhaust the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for the stack and visited set.
//
// Errors:
//
//   - ErrGraphNil               if g is nil or a nil *core.Graph.
//   - ErrStartVertexNotFound    if startID is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs
