// Package dfs defines types and options for depth-first traversal:
// target, depth limiting and neighbor filtering.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/searchviz/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Traverse.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the specified start node
	// does not exist in the graph.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")

	// ErrTargetNodeNotFound indicates that WithTarget named an absent node.
	ErrTargetNodeNotFound = errors.New("dfs: target node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
// Use with Traverse(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters are O(1).
type DFSOptions struct {
	// Target, when HasTarget is set, ends the traversal with TargetFound.
	Target    core.NodeID
	HasTarget bool

	// MaxDepth limits how deep DFS will descend (edges from start).
	// A value of 0 means no limit.
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge curr→nbr;
	// returning false skips that neighbor.
	FilterNeighbor func(curr, nbr core.NodeID) bool

	err error
}

// DefaultOptions returns DFSOptions with no target and no limits.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithTarget ends the traversal as soon as id is visited.
func WithTarget(id core.NodeID) Option {
	return func(o *DFSOptions) {
		o.Target = id
		o.HasTarget = true
	}
}

// WithMaxDepth sets a maximum recursion depth. Negative values are rejected
// with ErrOptionViolation by Traverse.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor sets a filter to skip specific neighbors.
func WithFilterNeighbor(fn func(curr, nbr core.NodeID) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}
