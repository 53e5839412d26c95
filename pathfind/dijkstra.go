package pathfind

import "math"

// dijkstra settles cells by tentative Distance using a linear scan over the
// whole grid; the first minimum in row-major order wins ties.
//
// Implementation:
//   - Stage 1: Distance[start] = 0, everything else +Inf (ResetScratch).
//   - Stage 2: select the unvisited non-wall cell of minimum Distance;
//     +Inf means the rest is unreachable.
//   - Stage 3: mark and emit it; stop on the end.
//   - Stage 4: relax unvisited neighbors with Distance[cur] + Weight[n].
func (s *search) dijkstra() {
	start, end := s.g.StartIndex(), s.g.EndIndex()
	s.g.CellAt(start).Distance = 0

	for {
		cur := s.closestUnvisited()
		if cur < 0 {
			s.fail()
			return
		}
		cc := s.g.CellAt(cur)
		cc.Visited = true
		if !s.visit(cur) {
			return
		}
		if cur == end {
			s.succeed(cur)
			return
		}

		for _, n := range s.neighbors(cur) {
			nc := s.g.CellAt(n)
			if nc.Visited {
				continue
			}
			d := cc.Distance + float64(nc.Weight())
			if d >= nc.Distance {
				continue
			}
			nc.Distance = d
			nc.Previous = cur
			if !s.discover(n, d) {
				return
			}
		}
	}
}

// closestUnvisited returns the index of the unvisited non-wall cell with the
// smallest finite Distance, or -1 when none is left.
func (s *search) closestUnvisited() int {
	best, bestDist := -1, math.Inf(1)
	for i := 0; i < s.g.Size(); i++ {
		c := s.g.CellAt(i)
		if c.Visited || c.IsWall() {
			continue
		}
		if c.Distance < bestDist {
			best, bestDist = i, c.Distance
		}
	}

	return best
}
