// SPDX-License-Identifier: MIT
// Package: searchviz/builder
//
// impl_star.go - Star(n) and Complete(n) constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/searchviz/core"
)

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor that builds a star with a center (index 0) and n-1 leaves.
// Edges are emitted center→leaf in leaf index order.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		ids := addNodes(g, n)
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds K_n.
// Edges are emitted for i < j in lexicographic (i, j) order; on directed
// graphs both orientations are added.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
		}
		ids := addNodes(g, n)
		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
				if directed {
					if err := connect(g, cfg, methodComplete, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
