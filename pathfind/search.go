package pathfind

import (
	"time"

	"github.com/katalvlaran/searchviz/event"
	"github.com/katalvlaran/searchviz/grid"
	"github.com/katalvlaran/searchviz/heuristic"
)

// search holds the state shared by every algorithm for one run.
type search struct {
	g     *grid.Grid
	alg   Algorithm
	h     heuristic.Kind
	opts  Options
	yield func(event.Event[grid.Position]) bool
	began time.Time

	visited int
	stopped bool
	nbuf    []int // neighbor scratch
}

// emit forwards ev unless the consumer already stopped; it reports whether
// the search may continue.
func (s *search) emit(ev event.Event[grid.Position]) bool {
	if s.stopped {
		return false
	}
	if !s.yield(ev) {
		s.stopped = true
	}

	return !s.stopped
}

// visit counts idx as visited and emits Visit.
func (s *search) visit(idx int) bool {
	s.visited++

	return s.emit(event.Event[grid.Position]{Kind: event.Visit, At: s.g.PositionOf(idx)})
}

// discover emits Discovered for idx when enabled. cost is the path cost from
// the start (G or Distance), which is always a whole number of weights.
func (s *search) discover(idx int, cost float64) bool {
	if !s.opts.Discovery {
		return true
	}

	return s.emit(event.Event[grid.Position]{Kind: event.Discovered, At: s.g.PositionOf(idx), Cost: int(cost)})
}

// neighbors returns the walkable neighbors of idx in a reused buffer.
func (s *search) neighbors(idx int) []int {
	s.nbuf = s.g.Neighbors(idx, s.nbuf[:0])

	return s.nbuf
}

// estimate fills H for every cell from the end position.
func (s *search) estimate() {
	end := s.g.PositionOf(s.g.EndIndex())
	for i := 0; i < s.g.Size(); i++ {
		c := s.g.CellAt(i)
		c.H = s.h.Estimate(c.Pos(), end)
	}
}

// succeed reconstructs the path to target and emits TargetFound, one
// PathStep per cell and Finished. A broken chain is reported as Unreachable.
func (s *search) succeed(target int) {
	path, cost, err := Reconstruct(s.g, s.g.PositionOf(target))
	if err != nil {
		s.fail()
		return
	}
	if !s.emit(event.Event[grid.Position]{Kind: event.TargetFound, At: s.g.PositionOf(target), Path: path, Cost: cost}) {
		return
	}
	acc := 0
	for _, p := range path {
		c, _ := s.g.Cell(p)
		acc += c.Weight()
		if !s.emit(event.Event[grid.Position]{Kind: event.PathStep, At: p, Cost: acc}) {
			return
		}
	}
	s.finish(true, len(path), cost)
}

// fail emits Unreachable for the end cell, then Finished.
func (s *search) fail() {
	if !s.emit(event.Event[grid.Position]{Kind: event.Unreachable, At: s.g.PositionOf(s.g.EndIndex())}) {
		return
	}
	s.finish(false, 0, 0)
}

func (s *search) finish(found bool, length, cost int) {
	sum := &event.Summary{
		Algorithm:  s.alg.String(),
		Found:      found,
		Optimal:    s.alg.Optimal(),
		Visited:    s.visited,
		PathLength: length,
		Cost:       cost,
		Elapsed:    time.Since(s.began),
	}
	if s.alg.UsesHeuristic() {
		sum.Heuristic = s.h.String()
	}
	s.emit(event.Event[grid.Position]{Kind: event.Finished, At: s.g.PositionOf(s.g.EndIndex()), Summary: sum})
}
