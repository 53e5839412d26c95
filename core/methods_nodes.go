// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in insertion order (ids ascending).
//
// Concurrency:
//   - All state is protected by mu; mutations take the write lock.

package core

// AddNode inserts a new node and returns its id.
// The optional label defaults to the decimal id.
//
// Implementation:
//   - Stage 1: Bump the id counter (ids are never reused).
//   - Stage 2: Register the node and an empty adjacency bucket.
//
// Complexity: O(1) amortized. Concurrency: write lock.
func (g *Graph) AddNode(label ...string) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextID++
	id := g.nextID

	n := &Node{ID: id, Label: id.String()}
	if len(label) > 0 && label[0] != "" {
		n.Label = label[0]
	}
	g.nodes[id] = n
	g.order = append(g.order, id)
	g.adjacency[id] = nil

	return id
}

// HasNode reports whether the node exists.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node record, or ErrNodeNotFound.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) Node(id NodeID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return *n, nil
}

// Nodes returns copies of all nodes in insertion order.
// Complexity: O(V). Concurrency: read lock.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.nodes[id])
	}

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// RemoveNode deletes the node, every incident edge and both adjacency
// projections. Removing an absent node is a no-op.
//
// Implementation:
//   - Stage 1: Return early if the node is absent.
//   - Stage 2: Drop incident edges from the edge list, remembering the other
//     endpoint so only those adjacency buckets are pruned.
//   - Stage 3: Prune the remembered buckets and delete the node's own bucket.
//
// Complexity: O(E + Σ deg(w)) for the touched neighbors w. Concurrency: write lock.
func (g *Graph) RemoveNode(id NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return
	}

	touched := make(map[NodeID]struct{})
	kept := g.edges[:0]
	for _, e := range g.edges {
		switch {
		case e.From == id && e.To == id:
			// self-loop, only the node's own bucket holds it
		case e.From == id:
			touched[e.To] = struct{}{}
		case e.To == id:
			touched[e.From] = struct{}{}
		default:
			kept = append(kept, e)
			continue
		}
	}
	g.edges = kept

	for w := range touched {
		g.adjacency[w] = withoutNeighbor(g.adjacency[w], id)
	}
	delete(g.adjacency, id)
	delete(g.nodes, id)

	for i, v := range g.order {
		if v == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}
