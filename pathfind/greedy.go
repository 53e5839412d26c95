package pathfind

// greedy runs Greedy Best-First: A* control flow keyed on H alone. A cell's
// predecessor is fixed the first time it joins the open set, and G follows
// that predecessor so Discovered reports the cost of the path actually taken.
func (s *search) greedy() {
	s.estimate()
	start, end := s.g.StartIndex(), s.g.EndIndex()
	s.g.CellAt(start).G = 0

	open := newOpenSet(s.g.Size())
	open.push(start)
	hScore := func(i int) float64 { return s.g.CellAt(i).H }

	for !open.empty() {
		cur := open.popMin(hScore)
		if cur == end {
			s.succeed(cur)
			return
		}
		s.g.CellAt(cur).Visited = true
		if !s.visit(cur) {
			return
		}

		for _, n := range s.neighbors(cur) {
			nc := s.g.CellAt(n)
			if nc.Visited || open.has(n) {
				continue
			}
			nc.Previous = cur
			nc.G = s.g.CellAt(cur).G + float64(nc.Weight())
			open.push(n)
			if !s.discover(n, nc.G) {
				return
			}
		}
	}
	s.fail()
}
