// Package bfs provides breadth-first traversal over a core.Graph as a lazy
// event sequence.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/searchviz/core"
	"github.com/katalvlaran/searchviz/event"
)

// queueItem pairs a node with the path that reached it.
type queueItem struct {
	id   core.NodeID
	path []core.NodeID
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[core.NodeID]bool
	yield   func(event.Event[core.NodeID]) bool
}

// Traverse validates its input and returns the event sequence of a
// breadth-first traversal from start.
//
// Events, in order: Visit for every dequeued unvisited node, Enqueued for every
// neighbor pushed, then exactly one of TargetFound, Unreachable (target set but
// never reached) or Completed (no target).
//
// Returns ErrGraphNil, ErrStartNodeNotFound, ErrTargetNodeNotFound or
// ErrOptionViolation for invalid input; nothing runs until the sequence is ranged.
func Traverse(g *core.Graph, start core.NodeID, opts ...Option) (event.Sequence[core.NodeID], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}
	if o.HasTarget && !g.HasNode(o.Target) {
		return nil, fmt.Errorf("%w: %d", ErrTargetNodeNotFound, o.Target)
	}

	return event.Once(func(yield func(event.Event[core.NodeID]) bool) {
		n := g.NodeCount()
		w := &walker{
			graph:   g,
			opts:    o,
			queue:   make([]queueItem, 0, n),
			visited: make(map[core.NodeID]bool, n),
			yield:   yield,
		}
		// Seed queue with start
		w.queue = append(w.queue, queueItem{id: start, path: []core.NodeID{start}})
		w.loop()
	}), nil
}

// loop processes the queue until it empties, the target is found or the
// consumer stops pulling.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.dequeue()
		// duplicate frontier entries are possible; the first one wins
		if w.visited[item.id] {
			continue
		}
		w.visited[item.id] = true
		if !w.yield(event.Event[core.NodeID]{Kind: event.Visit, At: item.id, Path: item.path}) {
			return
		}
		if w.opts.HasTarget && item.id == w.opts.Target {
			w.yield(event.Event[core.NodeID]{Kind: event.TargetFound, At: item.id, Path: item.path})
			return
		}
		if !w.enqueueNeighbors(item) {
			return
		}
	}

	if w.opts.HasTarget {
		w.yield(event.Event[core.NodeID]{Kind: event.Unreachable, At: w.opts.Target})
		return
	}
	w.yield(event.Event[core.NodeID]{Kind: event.Completed})
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unvisited
// neighbor in adjacency order. Returns false when the consumer stopped.
func (w *walker) enqueueNeighbors(item queueItem) bool {
	// a node removed mid-traversal simply has no neighbors
	neighbors, _ := w.graph.NeighborIDs(item.id)
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if w.opts.MaxDepth > 0 && len(item.path) > w.opts.MaxDepth {
			continue
		}
		path := extend(item.path, nbr)
		w.queue = append(w.queue, queueItem{id: nbr, path: path})
		if !w.yield(event.Event[core.NodeID]{Kind: event.Enqueued, At: nbr, Path: path}) {
			return false
		}
	}

	return true
}

// extend returns a fresh copy of path with id appended.
func extend(path []core.NodeID, id core.NodeID) []core.NodeID {
	out := make([]core.NodeID, len(path)+1)
	copy(out, path)
	out[len(path)] = id

	return out
}
