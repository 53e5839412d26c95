package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/searchviz/builder"
	"github.com/katalvlaran/searchviz/core"
	"github.com/katalvlaran/searchviz/dfs"
	"github.com/katalvlaran/searchviz/event"
)

// DFSSuite runs traversal checks against a fresh diamond graph per test.
//
//	  1
//	 / \
//	2   3
//	 \ /
//	  4
//	 / \
//	5   6
type DFSSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *DFSSuite) SetupTest() {
	s.g = core.NewGraph(core.WithDirected(true))
	for i := 0; i < 6; i++ {
		s.g.AddNode()
	}
	for _, e := range [][2]core.NodeID{{1, 2}, {1, 3}, {2, 4}, {3, 4}, {4, 5}, {4, 6}} {
		s.Require().NoError(s.g.AddUnitEdge(e[0], e[1]))
	}
}

func (s *DFSSuite) collect(start core.NodeID, opts ...dfs.Option) []event.Event[core.NodeID] {
	seq, err := dfs.Traverse(s.g, start, opts...)
	s.Require().NoError(err)

	return event.Collect(seq)
}

func visitOrder(evs []event.Event[core.NodeID]) []core.NodeID {
	var out []core.NodeID
	for _, ev := range event.Filter(evs, event.Visit) {
		out = append(out, ev.At)
	}

	return out
}

func (s *DFSSuite) TestErrors() {
	_, err := dfs.Traverse(nil, 1)
	s.ErrorIs(err, dfs.ErrGraphNil)

	_, err = dfs.Traverse(s.g, 42)
	s.ErrorIs(err, dfs.ErrStartNodeNotFound)

	_, err = dfs.Traverse(s.g, 1, dfs.WithTarget(42))
	s.ErrorIs(err, dfs.ErrTargetNodeNotFound)

	_, err = dfs.Traverse(s.g, 1, dfs.WithMaxDepth(-3))
	s.ErrorIs(err, dfs.ErrOptionViolation)
}

func (s *DFSSuite) TestVisitOrder() {
	evs := s.collect(1)
	s.Equal([]core.NodeID{1, 2, 4, 5, 6, 3}, visitOrder(evs))
	s.Equal(event.Completed, evs[len(evs)-1].Kind)
}

// Enqueued events follow adjacency order even though the stack is reversed.
func (s *DFSSuite) TestEnqueuedOrder() {
	evs := s.collect(1)
	s.Require().GreaterOrEqual(len(evs), 3)
	s.Equal(event.Enqueued, evs[1].Kind)
	s.Equal(core.NodeID(2), evs[1].At)
	s.Equal(event.Enqueued, evs[2].Kind)
	s.Equal(core.NodeID(3), evs[2].At)
}

func (s *DFSSuite) TestTarget() {
	evs := s.collect(1, dfs.WithTarget(6))
	last := evs[len(evs)-1]
	s.Equal(event.TargetFound, last.Kind)
	s.Equal([]core.NodeID{1, 2, 4, 6}, last.Path)
}

func (s *DFSSuite) TestUnreachableAgainstDirection() {
	evs := s.collect(4, dfs.WithTarget(1))
	s.Equal(event.Unreachable, evs[len(evs)-1].Kind)
	s.ElementsMatch([]core.NodeID{4, 5, 6}, visitOrder(evs))
}

func (s *DFSSuite) TestMaxDepth() {
	evs := s.collect(1, dfs.WithMaxDepth(1))
	s.Equal([]core.NodeID{1, 2, 3}, visitOrder(evs))
}

func (s *DFSSuite) TestFilterNeighbor() {
	no2 := func(_, nbr core.NodeID) bool { return nbr != 2 }
	evs := s.collect(1, dfs.WithFilterNeighbor(no2), dfs.WithTarget(5))
	last := evs[len(evs)-1]
	s.Equal(event.TargetFound, last.Kind)
	s.Equal([]core.NodeID{1, 3, 4, 5}, last.Path)
}

func (s *DFSSuite) TestSingleUse() {
	seq, err := dfs.Traverse(s.g, 1)
	s.Require().NoError(err)
	for range seq {
		break
	}
	s.Empty(event.Collect(seq))
}

func TestDFSSuite(t *testing.T) {
	suite.Run(t, new(DFSSuite))
}

// closure computes the nodes reachable from start by fixed-point iteration
// over the edge list, independent of any traversal order.
func closure(g *core.Graph, start core.NodeID) map[core.NodeID]bool {
	seen := map[core.NodeID]bool{start: true}
	edges := g.Edges()
	for changed := true; changed; {
		changed = false
		for _, e := range edges {
			if seen[e.From] && !seen[e.To] {
				seen[e.To], changed = true, true
			}
			if !g.Directed() && seen[e.To] && !seen[e.From] {
				seen[e.From], changed = true, true
			}
		}
	}

	return seen
}

// TestTraverse_ReachabilityClosure checks the visited set equals the
// reachability closure on seeded random graphs.
func TestTraverse_ReachabilityClosure(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 25; round++ {
		directed := round%2 == 0
		g := core.NewGraph(core.WithDirected(directed))
		const n = 30
		for i := 0; i < n; i++ {
			g.AddNode()
		}
		for i := 0; i < 40; i++ {
			u := core.NodeID(rng.Intn(n) + 1)
			v := core.NodeID(rng.Intn(n) + 1)
			_ = g.AddUnitEdge(u, v) // loops and duplicates are rejected
		}

		start := core.NodeID(rng.Intn(n) + 1)
		seq, err := dfs.Traverse(g, start)
		if err != nil {
			t.Fatal(err)
		}
		got := map[core.NodeID]bool{}
		for ev := range seq {
			if ev.Kind == event.Visit {
				if got[ev.At] {
					t.Fatalf("round %d: node %d visited twice", round, ev.At)
				}
				got[ev.At] = true
			}
		}
		want := closure(g, start)
		if len(got) != len(want) {
			t.Fatalf("round %d: visited %d nodes, closure has %d", round, len(got), len(want))
		}
		for id := range want {
			if !got[id] {
				t.Fatalf("round %d: reachable node %d not visited", round, id)
			}
		}
	}
}

// TestTraverse_Lattice covers an undirected builder fixture end to end.
func TestTraverse_Lattice(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Lattice(4, 4))
	if err != nil {
		t.Fatal(err)
	}
	seq, err := dfs.Traverse(g, 1, dfs.WithTarget(builder.LatticeNode(4, 3, 3)))
	if err != nil {
		t.Fatal(err)
	}
	last, _ := event.Last(seq)
	if last.Kind != event.TargetFound {
		t.Fatalf("last = %v; want target-found", last.Kind)
	}
	if last.Path[0] != 1 || last.Path[len(last.Path)-1] != builder.LatticeNode(4, 3, 3) {
		t.Errorf("path endpoints = %v", last.Path)
	}
}
