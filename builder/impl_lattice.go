// SPDX-License-Identifier: MIT
// Package: searchviz/builder
//
// impl_lattice.go - Lattice(rows, cols) constructor: the orthogonal grid as a graph.
//
// Determinism:
//   - Stable node order: row-major (r asc, then c asc); labels "r,c".
//   - Stable edge order: for each (r,c) emit Right then Bottom if present.
//   - Directed graphs get both orientations so the neighborhood stays symmetric.

package builder

import (
	"fmt"

	"github.com/katalvlaran/searchviz/core"
)

const (
	methodLattice = "Lattice"
	minLatticeDim = 1
	latticeLabel  = "%d,%d"
)

// Lattice returns a Constructor that builds a rows×cols orthogonal grid graph.
func Lattice(rows, cols int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if rows < minLatticeDim || cols < minLatticeDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodLattice, rows, cols, minLatticeDim, ErrTooFewNodes)
		}

		ids := make([]core.NodeID, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ids[r*cols+c] = g.AddNode(fmt.Sprintf(latticeLabel, r, c))
			}
		}

		directed := g.Directed()
		link := func(u, v core.NodeID) error {
			if err := connect(g, cfg, methodLattice, u, v); err != nil {
				return err
			}
			if directed {
				return connect(g, cfg, methodLattice, v, u)
			}

			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err := link(u, ids[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, ids[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// LatticeNode returns the id of cell (r, c) of a Lattice(_, cols) that was the
// first constructor applied to an empty graph.
func LatticeNode(cols, r, c int) core.NodeID {
	return core.NodeID(r*cols + c + 1)
}
