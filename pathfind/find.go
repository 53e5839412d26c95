// Package pathfind runs A*, Dijkstra, Greedy Best-First and Hill Climbing
// over a grid.Grid and reports their progress as a lazy event sequence.
package pathfind

import (
	"fmt"
	"time"

	"github.com/katalvlaran/searchviz/event"
	"github.com/katalvlaran/searchviz/grid"
	"github.com/katalvlaran/searchviz/heuristic"
)

// Sequence is the event stream of a grid search.
type Sequence = event.Sequence[grid.Position]

// Find validates its input and returns the event sequence of alg on g.
// h is ignored by Dijkstra.
//
// Nothing runs until the sequence is ranged: the first pull resets the grid
// scratch, later pulls advance the search one event at a time. The sequence is
// single-use and ends with exactly one Finished event carrying the Summary.
//
// Returns ErrGridNil, ErrNoStartOrEnd, ErrUnknownAlgorithm or
// heuristic.ErrUnknownHeuristic.
func Find(g *grid.Grid, alg Algorithm, h heuristic.Kind, opts ...Option) (Sequence, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	if alg.UsesHeuristic() && !h.Valid() {
		return nil, fmt.Errorf("%w: %v", heuristic.ErrUnknownHeuristic, h)
	}
	if g.StartIndex() == grid.NoPrevious || g.EndIndex() == grid.NoPrevious {
		return nil, ErrNoStartOrEnd
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return event.Once(func(yield func(event.Event[grid.Position]) bool) {
		s := &search{g: g, alg: alg, h: h, opts: o, yield: yield, began: time.Now()}
		g.ResetScratch()
		switch alg {
		case AStar:
			s.astar()
		case Dijkstra:
			s.dijkstra()
		case Greedy:
			s.greedy()
		case HillClimb:
			s.hillClimb()
		}
	}), nil
}
