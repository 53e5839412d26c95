// Package grid models the weighted 2-D board searched by package pathfind.
//
// What:
//
//   - Grid is a fixed rows×cols matrix of Cell stored row-major.
//   - Every Cell has an immutable Position, the wall/start/end flags, an
//     entry weight ≥ 1 and the search scratch (Distance, G, H, F, Visited,
//     Previous). Predecessors are row-major indices, never pointers.
//   - Neighbors enumerates orthogonal non-wall cells: up, down, left, right.
//   - ToGraph exports the walkable cells as a directed *core.Graph.
//
// Mutators return (changed, err). Operations the board treats as no-ops
// (a wall on the start, a weight on a wall, moving the end onto the start)
// report changed=false with a nil error.
//
// Complexity:
//
//   - New, ResetScratch, ClearWalls, Reset, Clone: O(rows×cols).
//   - ToggleWall, SetWeight, MoveStart, MoveEnd, Neighbors: O(1).
//
// Errors:
//
//   - ErrInvalidSize: rows or cols below 1.
//   - ErrInvalidPosition: position outside the board.
//   - ErrInvalidWeight: weight below 1.
//   - ErrSameEndpoints: start and end on the same cell.
package grid
