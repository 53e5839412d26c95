package pathfind

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/searchviz/grid"
)

// Reconstruct walks Previous links back from target until it meets the start
// cell and returns the visited cells oldest to newest, start excluded, with
// the sum of their weights as cost.
//
// Returns grid.ErrInvalidPosition for an out-of-range target and
// ErrBrokenPath when the chain ends (or loops) before reaching the start.
// Complexity: O(path length).
func Reconstruct(g *grid.Grid, target grid.Position) (path []grid.Position, cost int, err error) {
	if g == nil {
		return nil, 0, ErrGridNil
	}
	if !g.InBounds(target) {
		return nil, 0, fmt.Errorf("%w: %v", grid.ErrInvalidPosition, target)
	}

	cur := g.Index(target)
	for steps := 0; !g.CellAt(cur).IsStart(); steps++ {
		if steps >= g.Size() {
			return nil, 0, fmt.Errorf("%w: cycle at %v", ErrBrokenPath, g.PositionOf(cur))
		}
		c := g.CellAt(cur)
		path = append(path, c.Pos())
		cost += c.Weight()
		if c.Previous == grid.NoPrevious {
			return nil, 0, fmt.Errorf("%w: %v has no predecessor", ErrBrokenPath, c.Pos())
		}
		cur = c.Previous
	}
	slices.Reverse(path)

	return path, cost, nil
}
