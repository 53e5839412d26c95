// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddUnitEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Adjacency buckets are appended in edge-insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "fmt"

// AddEdge connects u and v with the given weight.
//
// Steps:
//  1. Validate weight and loops.
//  2. Lock, check both endpoints exist.
//  3. Reject duplicates: (u,v) for directed graphs, (u,v) or (v,u) otherwise.
//  4. Append to the edge list and to adjacency[u].
//  5. If undirected and u != v, mirror into adjacency[v].
//
// A failed call leaves the graph untouched.
// Complexity: O(deg(u) + deg(v)) for the duplicate check.
func (g *Graph) AddEdge(u, v NodeID, weight int64) error {
	if weight < 0 {
		return fmt.Errorf("%w: %d→%d weight=%d", ErrNegativeWeight, u, v, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if u == v && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if _, ok := g.nodes[u]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	if _, ok := g.nodes[v]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	}
	if g.hasEdgeLocked(u, v) {
		return fmt.Errorf("%w: %d→%d", ErrDuplicateEdge, u, v)
	}

	g.edges = append(g.edges, Edge{From: u, To: v, Weight: weight})
	g.adjacency[u] = append(g.adjacency[u], Neighbor{ID: v, Weight: weight})
	if !g.directed && u != v {
		g.adjacency[v] = append(g.adjacency[v], Neighbor{ID: u, Weight: weight})
	}

	return nil
}

// AddUnitEdge is AddEdge with DefaultWeight.
func (g *Graph) AddUnitEdge(u, v NodeID) error {
	return g.AddEdge(u, v, DefaultWeight)
}

// RemoveEdge deletes every edge matching (u,v), and (v,u) on undirected
// graphs, from the edge list and from both adjacency projections.
// Returns ErrEdgeNotFound when nothing matched.
//
// Complexity: O(E + deg(u) + deg(v)). Concurrency: write lock.
func (g *Graph) RemoveEdge(u, v NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	kept := g.edges[:0]
	for _, e := range g.edges {
		if g.matches(e, u, v) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept
	if removed == 0 {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, u, v)
	}

	g.adjacency[u] = withoutNeighbor(g.adjacency[u], v)
	if !g.directed {
		g.adjacency[v] = withoutNeighbor(g.adjacency[v], u)
	}

	return nil
}

// HasEdge reports whether an edge connects u to v, honoring directedness.
// Complexity: O(deg(u)). Concurrency: read lock.
func (g *Graph) HasEdge(u, v NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(u, v)
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E). Concurrency: read lock.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of stored edges (an undirected edge counts once).
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// hasEdgeLocked checks the stored edge set; caller holds mu.
func (g *Graph) hasEdgeLocked(u, v NodeID) bool {
	for _, e := range g.edges {
		if g.matches(e, u, v) {
			return true
		}
	}

	return false
}

// matches reports whether e joins u and v under the current directedness.
func (g *Graph) matches(e Edge, u, v NodeID) bool {
	if e.From == u && e.To == v {
		return true
	}

	return !g.directed && e.From == v && e.To == u
}
