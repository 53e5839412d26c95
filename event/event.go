// Package event defines the ordered, pull-based event stream produced by every
// traversal and pathfinding algorithm.
//
// A Sequence is a Go 1.23 range-over-func iterator. Each event is computed only
// when the consumer asks for it, so the consumer alone decides pacing, and
// breaking out of the range loop cancels the search without any cleanup.
package event

import (
	"fmt"
	"iter"
	"time"
)

// Kind tags an Event.
type Kind int

const (
	// Visit: a node/cell became visited. Path holds the path so far for graph traversals.
	Visit Kind = iota
	// Enqueued: a graph neighbor was pushed on the BFS queue / DFS stack.
	Enqueued
	// Discovered: a grid cell joined the open set or had its distance improved.
	Discovered
	// TargetFound: the target was reached; Path and Cost describe the result.
	TargetFound
	// PathStep: one cell of the reconstructed path, oldest to newest.
	PathStep
	// Unreachable: the search ended without reaching the requested target.
	Unreachable
	// Completed: a traversal without target exhausted its frontier.
	Completed
	// Finished: terminal grid event carrying the Summary.
	Finished
)

var kindNames = [...]string{
	Visit:       "visit",
	Enqueued:    "enqueued",
	Discovered:  "discovered",
	TargetFound: "target-found",
	PathStep:    "path-step",
	Unreachable: "unreachable",
	Completed:   "completed",
	Finished:    "finished",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// Terminal reports whether k ends a traversal event sequence.
func (k Kind) Terminal() bool {
	return k == TargetFound || k == Unreachable || k == Completed || k == Finished
}

// Event is one step of a search. T is core.NodeID for graph traversals and
// grid.Position for grid searches.
type Event[T any] struct {
	Kind Kind

	// At is the node or cell the event refers to.
	At T

	// Path is the path from the start to At (Visit, Enqueued, TargetFound).
	// For grid TargetFound it excludes the start cell.
	Path []T

	// Cost is the accumulated path cost from the start on TargetFound,
	// PathStep and Discovered events.
	Cost int

	// Summary is set on Finished events only.
	Summary *Summary
}

// Summary reports the outcome of a grid search.
type Summary struct {
	Algorithm string
	Heuristic string

	// Found is false when the search ended with Unreachable.
	Found bool

	// Optimal is true only for algorithms that guarantee a least-cost path.
	Optimal bool

	Visited    int
	PathLength int
	Cost       int
	Elapsed    time.Duration
}

// Sequence is a finite, ordered stream of events.
type Sequence[T any] = iter.Seq[Event[T]]
