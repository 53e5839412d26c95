package pathfind

// hillClimb moves from the start to the unvisited neighbor with the strictly
// lowest H, first in neighbor order on ties. It never backtracks: a plateau
// or local minimum ends the search as Unreachable.
func (s *search) hillClimb() {
	s.estimate()
	end := s.g.EndIndex()
	cur := s.g.StartIndex()
	s.g.CellAt(cur).Visited = true

	for {
		if !s.visit(cur) {
			return
		}
		if cur == end {
			s.succeed(cur)
			return
		}

		cc := s.g.CellAt(cur)
		best := -1
		for _, n := range s.neighbors(cur) {
			nc := s.g.CellAt(n)
			if nc.Visited {
				continue
			}
			if best < 0 || nc.H < s.g.CellAt(best).H {
				best = n
			}
		}
		if best < 0 || s.g.CellAt(best).H >= cc.H {
			s.fail()
			return
		}

		bc := s.g.CellAt(best)
		bc.Previous = cur
		bc.Visited = true
		cur = best
	}
}
