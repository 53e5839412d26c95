// Package dfs implements depth-first traversal on core.Graph as a lazy event
// sequence. The stack is explicit, so deep graphs never grow the goroutine stack.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/searchviz/core"
	"github.com/katalvlaran/searchviz/event"
)

// frame is one stack entry: a node and the path that pushed it.
type frame struct {
	id   core.NodeID
	path []core.NodeID
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph // underlying graph
	opts    DFSOptions  // traversal options
	stack   []frame     // LIFO frontier
	visited map[core.NodeID]bool
	// emit forwards to the consumer; false means stop
	emit func(event.Event[core.NodeID]) bool
	// pending is scratch for one expansion
	pending []frame
}

// Traverse validates its input and returns the event sequence of a
// depth-first traversal from start.
//
// Neighbors are pushed in reverse adjacency order, so they are popped (and
// visited) in adjacency order. Enqueued events are emitted in adjacency order.
// The sequence ends with TargetFound, Unreachable or Completed exactly like
// bfs.Traverse. There is no shortest-path guarantee.
//
// Errors: ErrGraphNil, ErrStartNodeNotFound, ErrTargetNodeNotFound, ErrOptionViolation.
func Traverse(g *core.Graph, start core.NodeID, opts ...Option) (event.Sequence[core.NodeID], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Validate endpoints
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}
	if dopts.HasTarget && !g.HasNode(dopts.Target) {
		return nil, fmt.Errorf("%w: %d", ErrTargetNodeNotFound, dopts.Target)
	}

	// 4. Defer all work to the first pull
	return event.Once(func(yield func(event.Event[core.NodeID]) bool) {
		w := &dfsWalker{
			graph:   g,
			opts:    dopts,
			stack:   []frame{{id: start, path: []core.NodeID{start}}},
			visited: make(map[core.NodeID]bool, g.NodeCount()),
			emit:    yield,
		}
		w.run()
	}), nil
}

// run pops frames until the stack empties, the target is found or the
// consumer stops.
func (w *dfsWalker) run() {
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.visited[top.id] {
			continue
		}
		w.visited[top.id] = true

		if !w.emit(event.Event[core.NodeID]{Kind: event.Visit, At: top.id, Path: top.path}) {
			return
		}
		if w.opts.HasTarget && top.id == w.opts.Target {
			w.emit(event.Event[core.NodeID]{Kind: event.TargetFound, At: top.id, Path: top.path})
			return
		}
		if !w.push(top) {
			return
		}
	}

	if w.opts.HasTarget {
		w.emit(event.Event[core.NodeID]{Kind: event.Unreachable, At: w.opts.Target})
		return
	}
	w.emit(event.Event[core.NodeID]{Kind: event.Completed})
}

// push collects the admissible neighbors of f, emits Enqueued for each in
// adjacency order and pushes them in reverse. Returns false when the consumer stopped.
func (w *dfsWalker) push(f frame) bool {
	if w.opts.MaxDepth > 0 && len(f.path) > w.opts.MaxDepth {
		return true
	}
	neighbors, err := w.graph.NeighborIDs(f.id)
	if err != nil {
		return true
	}

	w.pending = w.pending[:0]
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(f.id, nbr) {
			continue
		}
		path := make([]core.NodeID, len(f.path)+1)
		copy(path, f.path)
		path[len(f.path)] = nbr
		w.pending = append(w.pending, frame{id: nbr, path: path})
		if !w.emit(event.Event[core.NodeID]{Kind: event.Enqueued, At: nbr, Path: path}) {
			return false
		}
	}
	for i := len(w.pending) - 1; i >= 0; i-- {
		w.stack = append(w.stack, w.pending[i])
	}

	return true
}
