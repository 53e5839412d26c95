// Package grid defines the cell matrix searched by the pathfinding engine:
// positions, cells with their flags and search scratch, options and
// sentinel errors.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates rows or cols below 1.
	ErrInvalidSize = errors.New("grid: rows and cols must be at least 1")
	// ErrInvalidPosition indicates a row/col outside the grid.
	ErrInvalidPosition = errors.New("grid: position out of bounds")
	// ErrInvalidWeight indicates a cell weight below MinWeight.
	ErrInvalidWeight = errors.New("grid: weight must be at least 1")
	// ErrSameEndpoints indicates start and end were configured on the same cell.
	ErrSameEndpoints = errors.New("grid: start and end must differ")
)

const (
	// NoPrevious marks a cell without predecessor.
	NoPrevious = -1
	// MinWeight is the cost of entering a plain cell.
	MinWeight = 1
)

// Position addresses a cell by row and column and doubles as its identity.
type Position struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Cell is one grid square. Flags and weight are owned by the Grid and change
// only through its mutators; the exported scratch fields belong to whichever
// search is running and are reset by Grid.ResetScratch.
type Cell struct {
	pos    Position
	wall   bool
	start  bool
	end    bool
	weight int

	// Distance is the Dijkstra tentative distance.
	Distance float64
	// G, H and F are the A* / Greedy scores. Greedy keeps G as the cost along
	// its first-found predecessor.
	G, H, F float64
	// Visited marks cells a search already settled.
	Visited bool
	// Previous is the row-major index of the predecessor, or NoPrevious.
	Previous int
}

// Pos returns the immutable cell position.
func (c *Cell) Pos() Position { return c.pos }

// IsWall reports whether the cell blocks movement.
func (c *Cell) IsWall() bool { return c.wall }

// IsStart reports whether the cell is the search start.
func (c *Cell) IsStart() bool { return c.start }

// IsEnd reports whether the cell is the search target.
func (c *Cell) IsEnd() bool { return c.end }

// Weight returns the cost of entering the cell (≥ 1).
func (c *Cell) Weight() int { return c.weight }

// Option configures a Grid at construction.
type Option func(*gridConfig)

type gridConfig struct {
	start, end       Position
	hasStart, hasEnd bool
}

// WithStart places the start cell at p.
func WithStart(p Position) Option {
	return func(c *gridConfig) {
		c.start = p
		c.hasStart = true
	}
}

// WithEnd places the end cell at p.
func WithEnd(p Position) Option {
	return func(c *gridConfig) {
		c.end = p
		c.hasEnd = true
	}
}

// Grid is a fixed rows×cols matrix of cells stored row-major.
// It is not safe for concurrent mutation; use Clone to search in parallel.
type Grid struct {
	rows, cols int
	cells      []Cell
	start, end int // row-major index, or NoPrevious when unset
}
