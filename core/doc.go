// Package core provides the in-memory Graph consumed by the bfs and dfs
// traversals.
//
// The Graph G = (V,E) has:
//
//   - Integer node ids assigned monotonically from 1 (never reused).
//   - Non-negative integer edge weights.
//   - A graph-wide directed flag (WithDirected, SetDirected).
//     Undirected graphs store an edge once and mirror it in the adjacency projection.
//   - Optional self-loops (WithLoops).
//   - An adjacency projection id → []Neighbor kept in edge-insertion order,
//     which is the order the traversals expand neighbors in.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(label ...string) NodeID          // O(1)
//	HasNode(id NodeID) bool                  // O(1)
//	RemoveNode(id NodeID)                    // O(E); absent id is a no-op
//
//	// Edge lifecycle
//	AddEdge(u, v NodeID, weight int64) error // O(deg); ErrDuplicateEdge on re-add
//	AddUnitEdge(u, v NodeID) error           // weight = DefaultWeight
//	RemoveEdge(u, v NodeID) error            // O(E); ErrEdgeNotFound if nothing matched
//	HasEdge(u, v NodeID) bool
//
//	// Query
//	Neighbors(id NodeID) ([]Neighbor, error) // edge-insertion order
//	NeighborIDs(id NodeID) ([]NodeID, error)
//	Nodes() []Node / Edges() []Edge          // insertion order
//	NodeCount() / EdgeCount() / Stats()
//
// Errors:
//
//	ErrNodeNotFound   – missing endpoint or node
//	ErrEdgeNotFound   – RemoveEdge matched nothing
//	ErrDuplicateEdge  – edge already present (either direction when undirected)
//	ErrNegativeWeight – weight < 0
//	ErrLoopNotAllowed – u == v without WithLoops
//
// A failed mutation never changes the graph.
package core
