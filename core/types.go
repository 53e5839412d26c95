// Package core defines the Graph, Node, Edge and Neighbor types used by the
// traversal engine, together with graph options and sentinel errors.
//
// Errors:
//
//	ErrNodeNotFound   - an operation referenced a node that does not exist.
//	ErrEdgeNotFound   - RemoveEdge found nothing to remove.
//	ErrDuplicateEdge  - an edge already connects the two endpoints.
//	ErrNegativeWeight - edge weight below zero.
//	ErrLoopNotAllowed - self-loop on a graph built without WithLoops.
package core

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates that no edge matched the requested endpoints.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates an edge already connects the endpoints
	// (in either direction for undirected graphs).
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// DefaultWeight is the weight used by AddUnitEdge.
const DefaultWeight int64 = 1

// NodeID identifies a node within its Graph. IDs start at 1 and are never
// reused during the lifetime of a Graph.
type NodeID int

// String returns the decimal form of the id.
func (id NodeID) String() string { return strconv.Itoa(int(id)) }

// Node is a graph node. Label is opaque to every algorithm.
type Node struct {
	// ID is the unique identifier for this Node.
	ID NodeID

	// Label is free-form text for the rendering layer.
	Label string
}

// Edge connects From to To with a non-negative Weight.
// In undirected graphs an Edge is stored once and mirrored in the adjacency projection.
type Edge struct {
	From   NodeID
	To     NodeID
	Weight int64
}

// Neighbor is one entry of the adjacency projection.
type Neighbor struct {
	ID     NodeID
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the graph-wide directedness (true = directed).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory graph with integer node ids and an ordered adjacency
// projection.
//
// nodes, order, edges and adjacency are guarded by mu. The graph is meant to
// have a single writer; the lock only makes reads from a rendering goroutine safe.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool
	allowLoops bool

	// Storage
	nextID    NodeID                // last assigned id
	nodes     map[NodeID]*Node      // id → Node
	order     []NodeID              // node insertion order
	edges     []Edge                // edge insertion order
	adjacency map[NodeID][]Neighbor // id → neighbors in edge-insertion order
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[NodeID]*Node),
		adjacency: make(map[NodeID][]Neighbor),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
