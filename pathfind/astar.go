package pathfind

// openSet keeps candidate cells in insertion order with O(1) membership.
type openSet struct {
	items  []int
	member []bool
}

func newOpenSet(size int) *openSet {
	return &openSet{member: make([]bool, size)}
}

func (o *openSet) push(idx int) {
	o.items = append(o.items, idx)
	o.member[idx] = true
}

func (o *openSet) has(idx int) bool { return o.member[idx] }

func (o *openSet) empty() bool { return len(o.items) == 0 }

// popMin removes and returns the member with the smallest key; ties go to
// the earliest inserted.
func (o *openSet) popMin(key func(int) float64) int {
	best := 0
	for i := 1; i < len(o.items); i++ {
		if key(o.items[i]) < key(o.items[best]) {
			best = i
		}
	}
	idx := o.items[best]
	o.items = append(o.items[:best], o.items[best+1:]...)
	o.member[idx] = false

	return idx
}

// astar runs A* with F = G + H. Visited doubles as the closed set.
//
// Implementation:
//   - Stage 1: H for every cell; G[start] = 0, F[start] = H[start].
//   - Stage 2: pop the minimum F; the end stops the search uncounted.
//   - Stage 3: close and emit the cell, then relax non-closed neighbors on
//     strict G improvement, appending newcomers to the open set.
func (s *search) astar() {
	s.estimate()
	start, end := s.g.StartIndex(), s.g.EndIndex()
	sc := s.g.CellAt(start)
	sc.G, sc.F = 0, sc.H

	open := newOpenSet(s.g.Size())
	open.push(start)
	fScore := func(i int) float64 { return s.g.CellAt(i).F }

	for !open.empty() {
		cur := open.popMin(fScore)
		if cur == end {
			s.succeed(cur)
			return
		}
		cc := s.g.CellAt(cur)
		cc.Visited = true
		if !s.visit(cur) {
			return
		}

		for _, n := range s.neighbors(cur) {
			nc := s.g.CellAt(n)
			if nc.Visited {
				continue
			}
			tentative := cc.G + float64(nc.Weight())
			if tentative >= nc.G {
				continue
			}
			nc.Previous = cur
			nc.G = tentative
			nc.F = tentative + nc.H
			if !open.has(n) {
				open.push(n)
			}
			if !s.discover(n, tentative) {
				return
			}
		}
	}
	s.fail()
}
