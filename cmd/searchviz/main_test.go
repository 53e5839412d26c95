package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchviz/config"
	"github.com/katalvlaran/searchviz/core"
	"github.com/katalvlaran/searchviz/grid"
)

// quiet keeps test output free of pacing and debug logs.
var quiet = []string{"--steps-per-second", "0", "--log-level", "error"}

var small = []string{
	"--rows", "3", "--cols", "3",
	"--start-row", "0", "--start-col", "0",
	"--end-row", "2", "--end-col", "2",
}

func runArgs(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), args, &out))

	return out.String()
}

func TestRun_Grid(t *testing.T) {
	args := append([]string{"grid"}, small...)
	out := runArgs(t, append(args, quiet...)...)

	assert.Contains(t, out, "target-found")
	assert.Contains(t, out, "astar: nodes visited 8 | path length 4, cost 4 | optimal true")
	assert.True(t, strings.HasSuffix(out, "S..\n*..\n**E\n"), out)
}

func TestRun_GridNoFrame(t *testing.T) {
	args := append([]string{"grid", "-a", "dijkstra", "--frame=false"}, small...)
	out := runArgs(t, append(args, quiet...)...)

	assert.Contains(t, out, "dijkstra: nodes visited 9")
	assert.NotContains(t, out, "**E")
}

func TestRun_Graph(t *testing.T) {
	out := runArgs(t, append([]string{"graph"}, quiet...)...)
	assert.Contains(t, out, "completed")
	assert.Contains(t, out, "bfs: nodes visited 24")

	out = runArgs(t, append([]string{"graph", "-t", "dfs", "--end-node", "6"}, quiet...)...)
	assert.Contains(t, out, "target-found 0,5")
	assert.Contains(t, out, "path weight 5")
}

func TestRun_GraphShapes(t *testing.T) {
	cases := []struct {
		shape string
		want  string
	}{
		{"path", "target-found 4        [1 2 3 4]"},
		{"cycle", "target-found 4        [1 2 3 4]"},
		{"star", "target-found 4        [1 4]"},
		{"complete", "target-found 4        [1 4]"},
	}
	for _, tc := range cases {
		t.Run(tc.shape, func(t *testing.T) {
			args := []string{"graph", "--shape", tc.shape, "--size", "6", "--end-node", "4", "--weight", "3"}
			out := runArgs(t, append(args, quiet...)...)
			assert.Contains(t, out, tc.want)
		})
	}
}

// TestRun_GraphSeededWeights checks random weights are reproducible and
// reported along the found path.
func TestRun_GraphSeededWeights(t *testing.T) {
	gc := config.Default().Graph
	gc.Shape, gc.Size, gc.Weight, gc.WeightSeed = "star", 5, 9, 7

	g, err := generateGraph(gc)
	require.NoError(t, err)
	again, err := generateGraph(gc)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), again.Edges())

	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}
	want := pathWeight(g, []core.NodeID{1, 4})

	args := []string{"graph", "--shape", "star", "--size", "5", "--end-node", "4", "--weight", "9", "--weight-seed", "7"}
	out := runArgs(t, append(args, quiet...)...)
	assert.Contains(t, out, fmt.Sprintf("path weight %d\n", want))
}

func TestRun_GraphFromGrid(t *testing.T) {
	args := append([]string{"graph", "--from-grid"}, small...)
	out := runArgs(t, append(args, quiet...)...)
	assert.Contains(t, out, "target-found 2,2")
	assert.Contains(t, out, "[0,0 1,0 2,0 2,1 2,2]")
	assert.Contains(t, out, "path weight 4")
}

func TestRun_Compare(t *testing.T) {
	out := runArgs(t, append([]string{"compare"}, quiet...)...)
	for _, name := range []string{"ALGORITHM", "astar", "dijkstra", "greedy", "hillclimb"} {
		assert.Contains(t, out, name)
	}
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, run(context.Background(), nil, &out), errUsage)
	assert.ErrorIs(t, run(context.Background(), []string{"maze"}, &out), errUsage)
	assert.Error(t, run(context.Background(), []string{"grid", "--no-such-flag"}, &out))
	assert.Error(t, run(context.Background(), []string{"grid", "--algorithm", "bogo"}, &out))
}

func TestRenderFrame(t *testing.T) {
	g, err := grid.New(2, 4, grid.WithStart(grid.Position{Row: 0, Col: 0}), grid.WithEnd(grid.Position{Row: 1, Col: 3}))
	require.NoError(t, err)
	_, _ = g.ToggleWall(grid.Position{Row: 0, Col: 1})
	_, _ = g.SetWeight(grid.Position{Row: 0, Col: 2}, 5)
	_, _ = g.SetWeight(grid.Position{Row: 0, Col: 3}, 12)
	g.CellAt(g.Index(grid.Position{Row: 1, Col: 1})).Visited = true

	var buf bytes.Buffer
	require.NoError(t, renderFrame(&buf, g, []grid.Position{{Row: 1, Col: 0}}))
	assert.Equal(t, "S#5+\n*. E\n", buf.String())
}
