// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and the directedness switch.
// Policy:
//   - No algorithms here.
//   - Every exported function documents complexity and locking strategy.

package core

// Directed reports whether edges are one-way.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// SetDirected switches the graph-wide directedness and rebuilds the adjacency
// projection from the edge set.
//
// Implementation:
//   - Stage 1: No-op if the flag already has the requested value.
//   - Stage 2: Reset every adjacency bucket (keeping one per node).
//   - Stage 3: Replay edges in insertion order; when undirected, an edge whose
//     reverse was already projected is not mirrored twice.
//
// Complexity: O(V + E·d) where d is the largest degree. Concurrency: write lock.
func (g *Graph) SetDirected(directed bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.directed == directed {
		return
	}
	g.directed = directed

	for _, id := range g.order {
		g.adjacency[id] = nil
	}
	for _, e := range g.edges {
		if !directed && containsNeighbor(g.adjacency[e.From], e.To) {
			// reverse edge already projected both ways
			continue
		}
		g.adjacency[e.From] = append(g.adjacency[e.From], Neighbor{ID: e.To, Weight: e.Weight})
		if !directed && e.From != e.To {
			g.adjacency[e.To] = append(g.adjacency[e.To], Neighbor{ID: e.From, Weight: e.Weight})
		}
	}
}

// Stats returns a snapshot of configuration flags and catalog sizes.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GraphStats{
		Directed:   g.directed,
		AllowLoops: g.allowLoops,
		NodeCount:  len(g.nodes),
		EdgeCount:  len(g.edges),
		NextID:     g.nextID + 1,
	}
}

// GraphStats is a value snapshot returned by Stats.
type GraphStats struct {
	Directed   bool
	AllowLoops bool
	NodeCount  int
	EdgeCount  int

	// NextID is the id the next AddNode call will return.
	NextID NodeID
}
