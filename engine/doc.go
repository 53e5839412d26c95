// Package engine exposes the operations a Visualizer needs.
//
//	e := engine.New(log)
//	g, _ := e.BuildGrid(20, 40, grid.Position{Row: 10, Col: 5}, grid.Position{Row: 10, Col: 35})
//	seq, _ := e.FindPath(g, pathfind.AStar, heuristic.Manhattan)
//	for ev := range seq {
//		// render ev at the Visualizer's own pace
//	}
//
// Operations:
//
//   - BuildGraph / BuildGrid   construct the searchable structures.
//   - Traverse                 BFS or DFS over a core.Graph.
//   - FindPath                 A*, Dijkstra, Greedy or Hill Climbing over a grid.Grid.
//   - Compare                  several grid algorithms at once, one grid clone each.
//
// Every sequence is lazy and single-use. The engine logs rejected requests at
// Warn, starts at Debug and outcomes at Info.
package engine
