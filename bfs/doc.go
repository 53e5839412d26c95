// Package bfs provides breadth-first traversal over a core.Graph, emitted as a
// lazy event.Sequence so a visualizer can animate it at its own pace.
//
// What
//
//   - FIFO frontier seeded with (start, [start]); a visited set keyed by node id.
//   - Duplicate frontier entries are possible and silently dropped when dequeued.
//   - Every visited node yields a Visit event carrying the path from start.
//   - Every pushed neighbor yields an Enqueued event, in adjacency order.
//   - The sequence ends with TargetFound, Unreachable or Completed.
//
// Why
//
//   - The first path found to the target has the fewest edges, because nodes
//     are visited in non-decreasing depth order.
//
// Determinism
//
//	core.Graph keeps adjacency in edge-insertion order and BFS enqueues
//	neighbors in that order, so the event sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E) queue operations, plus O(depth) per path copy.
//   - Memory: O(V + E) queue entries and paths.
//
// Usage
//
//	seq, err := bfs.Traverse(g, start, bfs.WithTarget(end))
//	if err != nil {
//		// ErrGraphNil, ErrStartNodeNotFound, ErrTargetNodeNotFound, ErrOptionViolation
//	}
//	for ev := range seq {
//		// render ev; break to cancel
//	}
//
// Options
//
//   - WithTarget(id):          stop at id with TargetFound.
//   - WithMaxDepth(d):         do not enqueue beyond depth d (>0); 0 = no limit.
//   - WithFilterNeighbor(fn):  skip edges for which fn(curr,neighbor)==false.
package bfs
