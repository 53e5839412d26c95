// SPDX-License-Identifier: MIT
// Package: searchviz/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Determinism:
//   - Nodes are added in index order 0..n-1.
//   - Edges (i-1)→i are emitted in increasing i; Cycle closes with (n-1)→0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/searchviz/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		ids := addNodes(g, n)
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}
		ids := addNodes(g, n)
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodCycle, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return connect(g, cfg, methodCycle, ids[n-1], ids[0])
	}
}
