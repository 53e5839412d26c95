// Package builder assembles deterministic core.Graph fixtures: paths, cycles,
// stars, complete graphs and orthogonal lattices.
//
// It feeds the traversal examples and tests, and the graphs the CLI generates
// when no edges are configured. Path, Cycle, Star and Complete label nodes
// "1".."n"; edge weights come from WithConstantWeight or the seeded
// WithRandomWeights (DefaultWeight otherwise).
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(false)},
//		[]builder.BuilderOption{builder.WithRandomWeights(7, 1, 9)},
//		builder.Lattice(3, 4),
//	)
//
// Constructors:
//
//   - Path(n)           n ≥ 2
//   - Cycle(n)          n ≥ 3
//   - Star(n)           n ≥ 2, center is the first node
//   - Complete(n)       n ≥ 1
//   - Lattice(r, c)     r, c ≥ 1, labels "r,c"
//
// Errors:
//
//   - ErrTooFewNodes      size parameter below the constructor minimum.
//   - ErrConstructFailed  nil constructor.
//   - core errors (wrapped) when an edge cannot be added.
package builder
