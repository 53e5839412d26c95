// File: methods_adjacent.go
// Role: Adjacency projection queries and bucket helpers.
// Determinism:
//   - Neighbors() preserves edge-insertion order; this order drives BFS/DFS.

package core

// Neighbors returns a copy of the adjacency bucket of id, in edge-insertion
// order. For undirected graphs mirrored edges are included.
//
// Errors: ErrNodeNotFound if id is absent.
// Complexity: O(deg(id)). Concurrency: read lock.
func (g *Graph) Neighbors(id NodeID) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}
	bucket := g.adjacency[id]
	out := make([]Neighbor, len(bucket))
	copy(out, bucket)

	return out, nil
}

// NeighborIDs is Neighbors without the weights.
func (g *Graph) NeighborIDs(id NodeID) ([]NodeID, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]NodeID, len(nbs))
	for i, n := range nbs {
		ids[i] = n.ID
	}

	return ids, nil
}

// AdjacencyList returns a snapshot id → neighbor ids of the whole projection.
// Complexity: O(V + E). Concurrency: read lock.
func (g *Graph) AdjacencyList() map[NodeID][]NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[NodeID][]NodeID, len(g.adjacency))
	for id, bucket := range g.adjacency {
		ids := make([]NodeID, len(bucket))
		for i, n := range bucket {
			ids[i] = n.ID
		}
		out[id] = ids
	}

	return out
}

// withoutNeighbor returns bucket with every entry for id removed, preserving order.
func withoutNeighbor(bucket []Neighbor, id NodeID) []Neighbor {
	kept := bucket[:0]
	for _, n := range bucket {
		if n.ID != id {
			kept = append(kept, n)
		}
	}

	return kept
}

func containsNeighbor(bucket []Neighbor, id NodeID) bool {
	for _, n := range bucket {
		if n.ID == id {
			return true
		}
	}

	return false
}
