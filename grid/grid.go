package grid

import (
	"fmt"
	"math"
)

var inf = math.Inf(1)

// offsets lists the neighbor directions in enumeration order: up, down, left, right.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// New constructs a rows×cols grid of plain cells with weight 1 and reset
// scratch. WithStart/WithEnd place the endpoints.
// Returns ErrInvalidSize, ErrInvalidPosition or ErrSameEndpoints.
// Complexity: O(rows×cols).
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %d×%d", ErrInvalidSize, rows, cols)
	}
	var cfg gridConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Grid{rows: rows, cols: cols, start: NoPrevious, end: NoPrevious}
	if cfg.hasStart && !g.InBounds(cfg.start) {
		return nil, fmt.Errorf("%w: start %v", ErrInvalidPosition, cfg.start)
	}
	if cfg.hasEnd && !g.InBounds(cfg.end) {
		return nil, fmt.Errorf("%w: end %v", ErrInvalidPosition, cfg.end)
	}
	if cfg.hasStart && cfg.hasEnd && cfg.start == cfg.end {
		return nil, fmt.Errorf("%w: %v", ErrSameEndpoints, cfg.start)
	}

	g.cells = make([]Cell, rows*cols)
	for i := range g.cells {
		g.cells[i] = Cell{pos: g.PositionOf(i), weight: MinWeight}
	}
	g.ResetScratch()
	if cfg.hasStart {
		g.start = g.Index(cfg.start)
		g.cells[g.start].start = true
	}
	if cfg.hasEnd {
		g.end = g.Index(cfg.end)
		g.cells[g.end].end = true
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Index maps p to its row-major index: Row*cols + Col. p must be in bounds.
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// PositionOf converts a row-major index back to a Position.
func (g *Grid) PositionOf(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// Cell returns a copy of the cell at p.
func (g *Grid) Cell(p Position) (Cell, error) {
	if !g.InBounds(p) {
		return Cell{}, fmt.Errorf("%w: %v", ErrInvalidPosition, p)
	}

	return g.cells[g.Index(p)], nil
}

// CellAt returns the live cell at row-major index idx. Searches use it to
// read flags and write scratch; callers must not retain it across mutations.
func (g *Grid) CellAt(idx int) *Cell { return &g.cells[idx] }

// Start returns the start position; ok is false when none is placed.
func (g *Grid) Start() (p Position, ok bool) {
	if g.start == NoPrevious {
		return Position{}, false
	}

	return g.PositionOf(g.start), true
}

// End returns the end position; ok is false when none is placed.
func (g *Grid) End() (p Position, ok bool) {
	if g.end == NoPrevious {
		return Position{}, false
	}

	return g.PositionOf(g.end), true
}

// StartIndex returns the row-major index of the start, or NoPrevious.
func (g *Grid) StartIndex() int { return g.start }

// EndIndex returns the row-major index of the end, or NoPrevious.
func (g *Grid) EndIndex() int { return g.end }

// Neighbors appends to buf the row-major indices of the in-bounds, non-wall
// orthogonal neighbors of idx in the order up, down, left, right, and returns
// the extended slice.
func (g *Grid) Neighbors(idx int, buf []int) []int {
	p := g.PositionOf(idx)
	for _, d := range offsets {
		q := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		if !g.InBounds(q) {
			continue
		}
		n := g.Index(q)
		if g.cells[n].wall {
			continue
		}
		buf = append(buf, n)
	}

	return buf
}

// Walls returns the wall positions in row-major order.
func (g *Grid) Walls() []Position {
	var out []Position
	for i := range g.cells {
		if g.cells[i].wall {
			out = append(out, g.cells[i].pos)
		}
	}

	return out
}

// ResetScratch restores every cell's search fields: +Inf scores, not visited,
// no predecessor. Idempotent.
// Complexity: O(rows×cols).
func (g *Grid) ResetScratch() {
	for i := range g.cells {
		c := &g.cells[i]
		c.Distance, c.G, c.H, c.F = inf, inf, inf, inf
		c.Visited = false
		c.Previous = NoPrevious
	}
}

// Clone returns a deep copy of g, scratch included.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([]Cell, len(g.cells))
	copy(cp.cells, g.cells)

	return &cp
}
