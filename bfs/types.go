// Package bfs provides tunable options and error definitions
// for breadth-first traversal over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/searchviz/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNodeNotFound is returned when the start id is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrTargetNodeNotFound is returned when WithTarget names an absent node.
	ErrTargetNodeNotFound = errors.New("bfs: target node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation by Traverse.
type Option func(*Options)

// Options holds parameters to customize a traversal.
type Options struct {
	// Target, when HasTarget is set, stops the traversal with TargetFound.
	Target    core.NodeID
	HasTarget bool

	// MaxDepth, if > 0, stops enqueuing beyond this depth (edges from start).
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor core.NodeID) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no target, no depth limit and no filtering.
func DefaultOptions() Options {
	return Options{
		MaxDepth:       0,
		FilterNeighbor: func(_, _ core.NodeID) bool { return true },
	}
}

// WithTarget stops the traversal as soon as id is visited.
func WithTarget(id core.NodeID) Option {
	return func(o *Options) {
		o.Target = id
		o.HasTarget = true
	}
}

// WithMaxDepth limits the traversal depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.NodeID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
