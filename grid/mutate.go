package grid

import "fmt"

// locate validates p and returns its live cell and index.
func (g *Grid) locate(p Position) (*Cell, int, error) {
	if !g.InBounds(p) {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidPosition, p)
	}
	idx := g.Index(p)

	return &g.cells[idx], idx, nil
}

// ToggleWall flips the wall flag at p. Start and end cells are left alone and
// report changed=false. A cell that becomes a wall loses its custom weight.
func (g *Grid) ToggleWall(p Position) (changed bool, err error) {
	c, _, err := g.locate(p)
	if err != nil {
		return false, err
	}

	return g.setWall(c, !c.wall), nil
}

// SetWall sets the wall flag at p to wall; changed is false when the flag
// already had that value or p is an endpoint.
func (g *Grid) SetWall(p Position, wall bool) (changed bool, err error) {
	c, _, err := g.locate(p)
	if err != nil {
		return false, err
	}

	return g.setWall(c, wall), nil
}

func (g *Grid) setWall(c *Cell, wall bool) bool {
	if c.start || c.end || c.wall == wall {
		return false
	}
	c.wall = wall
	if wall {
		c.weight = MinWeight
	}

	return true
}

// SetWeight assigns the entry cost w to the cell at p.
// Walls, start and end keep weight 1 and report changed=false.
// Returns ErrInvalidWeight for w < 1.
func (g *Grid) SetWeight(p Position, w int) (changed bool, err error) {
	c, _, err := g.locate(p)
	if err != nil {
		return false, err
	}
	if w < MinWeight {
		return false, fmt.Errorf("%w: %d at %v", ErrInvalidWeight, w, p)
	}
	if c.wall || c.start || c.end || c.weight == w {
		return false, nil
	}
	c.weight = w

	return true, nil
}

// MoveStart relocates the start to p. Moving onto a wall, onto the end or
// onto the current start is a no-op. Both the vacated and the occupied cell
// lose their scratch and custom weight.
func (g *Grid) MoveStart(p Position) (changed bool, err error) {
	return g.moveEndpoint(p, &g.start, g.end, func(c *Cell, on bool) { c.start = on })
}

// MoveEnd relocates the end to p with the same rules as MoveStart.
func (g *Grid) MoveEnd(p Position) (changed bool, err error) {
	return g.moveEndpoint(p, &g.end, g.start, func(c *Cell, on bool) { c.end = on })
}

// moveEndpoint moves the endpoint stored at *slot to p, refusing the cell
// held by other.
func (g *Grid) moveEndpoint(p Position, slot *int, other int, flag func(*Cell, bool)) (bool, error) {
	c, idx, err := g.locate(p)
	if err != nil {
		return false, err
	}
	if c.wall || idx == other || idx == *slot {
		return false, nil
	}
	if *slot != NoPrevious {
		old := &g.cells[*slot]
		flag(old, false)
		clearCell(old)
	}
	flag(c, true)
	clearCell(c)
	*slot = idx

	return true, nil
}

// clearCell drops scratch and custom weight from c.
func clearCell(c *Cell) {
	c.weight = MinWeight
	c.Distance, c.G, c.H, c.F = inf, inf, inf, inf
	c.Visited = false
	c.Previous = NoPrevious
}

// ClearWalls removes every wall and returns how many were cleared.
func (g *Grid) ClearWalls() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].wall {
			g.cells[i].wall = false
			n++
		}
	}

	return n
}

// Reset clears scratch, walls and custom weights; endpoints stay in place.
func (g *Grid) Reset() {
	g.ClearWalls()
	for i := range g.cells {
		g.cells[i].weight = MinWeight
	}
	g.ResetScratch()
}
