package grid

import (
	"fmt"

	"github.com/katalvlaran/searchviz/core"
)

// nodeLabel formats the label of the node standing for cell p.
func nodeLabel(p Position) string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// ToGraph converts the walkable cells into a directed *core.Graph so the
// graph traversals can run over a grid layout. Each non-wall cell becomes a
// node labeled "row,col"; for each neighbor pair an edge u→v carries the
// weight of entering v. ids[i] is the node of row-major index i, 0 for walls.
// Complexity: O(rows×cols) time and memory.
func (g *Grid) ToGraph() (cg *core.Graph, ids []core.NodeID) {
	cg = core.NewGraph(core.WithDirected(true))
	ids = make([]core.NodeID, len(g.cells))
	for i := range g.cells {
		if g.cells[i].wall {
			continue
		}
		ids[i] = cg.AddNode(nodeLabel(g.cells[i].pos))
	}

	var buf []int
	for i := range g.cells {
		if ids[i] == 0 {
			continue
		}
		buf = g.Neighbors(i, buf[:0])
		for _, n := range buf {
			// both endpoints exist and the pair is unique, so AddEdge cannot fail
			_ = cg.AddEdge(ids[i], ids[n], int64(g.cells[n].weight))
		}
	}

	return cg, ids
}
