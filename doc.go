// Package searchviz is an in-memory engine for watching graph and grid
// searches unfold one step at a time.
//
// Every search returns a lazy, single-use event sequence (iter.Seq). Nothing
// runs until the caller pulls the next event, so a renderer decides the pace.
//
// Packages:
//
//	core/       - Graph, Node, Edge and the per-node adjacency projection
//	builder/    - deterministic graph fixtures (path, cycle, star, lattice)
//	bfs/, dfs/  - graph traversals emitting Visit/Enqueued/TargetFound events
//	grid/       - rows×cols cell matrix: walls, weights, start/end, scratch
//	heuristic/  - Manhattan, Euclidean and Chebyshev estimates
//	pathfind/   - A*, Dijkstra, Greedy Best-First and Hill Climbing on a grid
//	event/      - the Event type and sequence helpers
//	engine/     - facade wiring the above with zap logging; Compare runs
//	              several grid searches concurrently
//	config/     - viper/pflag configuration with validator checks
//	logger/     - zap logger construction
//	cmd/searchviz - terminal visualizer
//
// Quick example:
//
//	g, _ := grid.New(3, 3, grid.WithStart(grid.Position{}), grid.WithEnd(grid.Position{Row: 2, Col: 2}))
//	seq, _ := pathfind.Find(g, pathfind.AStar, heuristic.Manhattan)
//	for ev := range seq {
//		fmt.Println(ev.Kind, ev.At)
//	}
package searchviz
