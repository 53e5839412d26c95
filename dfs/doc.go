// Package dfs implements depth-first traversal on a core.Graph, supporting
// both directed and undirected graphs.
//
// What:
//
//   - Traverse(g, start, opts...) returns a lazy event.Sequence that explores
//     as far as possible along each branch before backtracking.
//   - The frontier is an explicit LIFO stack; neighbors are pushed in reverse
//     adjacency order so the first neighbor is explored first.
//   - Events: Visit per node, Enqueued per push, then TargetFound, Unreachable
//     or Completed.
//
// Options:
//
//   - WithTarget(id)            stop once id is visited.
//   - WithMaxDepth(limit)       stops descending beyond given depth (>=0).
//   - WithFilterNeighbor(fn)    filters neighbor IDs; return false to skip.
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of path copies.
//   - Memory: O(V) for the visited set plus the stacked paths.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartNodeNotFound      if start is missing.
//   - ErrTargetNodeNotFound     if the target is missing.
//   - ErrOptionViolation        negative MaxDepth.
package dfs
