package main

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/searchviz/grid"
)

// Frame symbols.
const (
	symStart   = 'S'
	symEnd     = 'E'
	symWall    = '#'
	symEmpty   = ' '
	symVisited = '.'
	symPath    = '*'
)

// renderFrame writes one line per grid row. Endpoints and walls win over the
// path, the path over visited cells, and visited cells over weights; weights
// above 9 print as '+'.
func renderFrame(w io.Writer, g *grid.Grid, path []grid.Position) error {
	onPath := make(map[grid.Position]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := grid.Position{Row: r, Col: c}
			cell := g.CellAt(g.Index(p))
			_ = bw.WriteByte(symbol(cell, onPath[p]))
		}
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}

func symbol(c *grid.Cell, onPath bool) byte {
	switch {
	case c.IsStart():
		return symStart
	case c.IsEnd():
		return symEnd
	case c.IsWall():
		return symWall
	case onPath:
		return symPath
	case c.Visited:
		return symVisited
	case c.Weight() > 9:
		return '+'
	case c.Weight() > 1:
		return strconv.Itoa(c.Weight())[0]
	}

	return symEmpty
}
