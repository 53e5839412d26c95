package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/searchviz/bfs"
	"github.com/katalvlaran/searchviz/builder"
	"github.com/katalvlaran/searchviz/core"
	"github.com/katalvlaran/searchviz/event"
)

// fiveNode builds the undirected graph 1-2, 2-3, 2-4, 3-5, 4-5.
func fiveNode(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		g.AddNode()
	}
	for _, e := range [][2]core.NodeID{{1, 2}, {2, 3}, {2, 4}, {3, 5}, {4, 5}} {
		require.NoError(t, g.AddUnitEdge(e[0], e[1]))
	}

	return g
}

func visits(evs []event.Event[core.NodeID]) []core.NodeID {
	var out []core.NodeID
	for _, ev := range event.Filter(evs, event.Visit) {
		out = append(out, ev.At)
	}

	return out
}

// TestTraverse_Errors verifies that invalid inputs and options are rejected.
func TestTraverse_Errors(t *testing.T) {
	_, err := bfs.Traverse(nil, 1)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.Traverse(g, 1)
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)

	a := g.AddNode()
	_, err = bfs.Traverse(g, a, bfs.WithTarget(99))
	assert.ErrorIs(t, err, bfs.ErrTargetNodeNotFound)

	_, err = bfs.Traverse(g, a, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestTraverse_FiveNodeScenario checks the shortest path is found through the
// first adjacency branch.
func TestTraverse_FiveNodeScenario(t *testing.T) {
	g := fiveNode(t)
	seq, err := bfs.Traverse(g, 1, bfs.WithTarget(5))
	require.NoError(t, err)

	evs := event.Collect(seq)
	last := evs[len(evs)-1]
	require.Equal(t, event.TargetFound, last.Kind)
	assert.Equal(t, core.NodeID(5), last.At)
	assert.Equal(t, []core.NodeID{1, 2, 3, 5}, last.Path)
	assert.Equal(t, []core.NodeID{1, 2, 3, 4, 5}, visits(evs))
}

// TestTraverse_EventOrder pins the exact interleaving of Visit and Enqueued.
func TestTraverse_EventOrder(t *testing.T) {
	g := fiveNode(t)
	seq, err := bfs.Traverse(g, 1, bfs.WithTarget(3))
	require.NoError(t, err)

	var kinds []event.Kind
	var at []core.NodeID
	for ev := range seq {
		kinds = append(kinds, ev.Kind)
		at = append(at, ev.At)
	}
	assert.Equal(t, []event.Kind{
		event.Visit, event.Enqueued,
		event.Visit, event.Enqueued, event.Enqueued,
		event.Visit, event.TargetFound,
	}, kinds)
	assert.Equal(t, []core.NodeID{1, 2, 2, 3, 4, 3, 3}, at)
}

// TestTraverse_Completed checks a traversal without target visits every
// reachable node once and ends with Completed.
func TestTraverse_Completed(t *testing.T) {
	g := fiveNode(t)
	isolated := g.AddNode()
	seq, err := bfs.Traverse(g, 1)
	require.NoError(t, err)

	evs := event.Collect(seq)
	assert.Equal(t, event.Completed, evs[len(evs)-1].Kind)
	got := visits(evs)
	assert.ElementsMatch(t, []core.NodeID{1, 2, 3, 4, 5}, got)
	assert.NotContains(t, got, isolated)
}

// TestTraverse_Unreachable checks the terminal event when the target is disconnected.
func TestTraverse_Unreachable(t *testing.T) {
	g := fiveNode(t)
	isolated := g.AddNode()
	seq, err := bfs.Traverse(g, 1, bfs.WithTarget(isolated))
	require.NoError(t, err)

	last, ok := event.Last(seq)
	require.True(t, ok)
	assert.Equal(t, event.Unreachable, last.Kind)
	assert.Equal(t, isolated, last.At)
	assert.Nil(t, last.Path)
}

// TestTraverse_Directed follows edge direction only.
func TestTraverse_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	require.NoError(t, g.AddUnitEdge(a, b))
	require.NoError(t, g.AddUnitEdge(c, b))

	seq, err := bfs.Traverse(g, a, bfs.WithTarget(c))
	require.NoError(t, err)
	last, _ := event.Last(seq)
	assert.Equal(t, event.Unreachable, last.Kind)
}

// TestTraverse_MaxDepth stops enqueuing beyond the configured depth.
func TestTraverse_MaxDepth(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)

	seq, err := bfs.Traverse(g, 1, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2}, visits(event.Collect(seq)))
}

// TestTraverse_FilterNeighbor skips filtered edges.
func TestTraverse_FilterNeighbor(t *testing.T) {
	g := fiveNode(t)
	skip3 := func(_, nbr core.NodeID) bool { return nbr != 3 }

	seq, err := bfs.Traverse(g, 1, bfs.WithTarget(5), bfs.WithFilterNeighbor(skip3))
	require.NoError(t, err)
	last, _ := event.Last(seq)
	require.Equal(t, event.TargetFound, last.Kind)
	assert.Equal(t, []core.NodeID{1, 2, 4, 5}, last.Path)
}

// TestTraverse_EarlyStop checks that breaking out of the range is safe and
// that the sequence cannot be replayed.
func TestTraverse_EarlyStop(t *testing.T) {
	g := fiveNode(t)
	seq, err := bfs.Traverse(g, 1)
	require.NoError(t, err)

	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
	assert.Empty(t, event.Collect(seq))
}

// TestTraverse_ShuffledInsertion checks that the reported path length does not
// depend on the order edges were inserted.
func TestTraverse_ShuffledInsertion(t *testing.T) {
	const rows, cols = 5, 6
	ref, err := builder.BuildGraph(nil, nil, builder.Lattice(rows, cols))
	require.NoError(t, err)
	edges := ref.Edges()
	start := builder.LatticeNode(cols, 0, 0)
	target := builder.LatticeNode(cols, rows-1, cols-1)

	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

		g := core.NewGraph()
		for i := 0; i < rows*cols; i++ {
			g.AddNode()
		}
		for _, e := range edges {
			require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
		}

		seq, err := bfs.Traverse(g, start, bfs.WithTarget(target))
		require.NoError(t, err)
		last, _ := event.Last(seq)
		require.Equal(t, event.TargetFound, last.Kind, "round %d", round)
		assert.Len(t, last.Path, rows+cols-1, "round %d", round)
	}
}
