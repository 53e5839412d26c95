package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchviz/grid"
	"github.com/katalvlaran/searchviz/pathfind"
)

func TestReconstruct(t *testing.T) {
	g := newGrid(t, 1, 4, pos(0, 0), pos(0, 3))
	_, err := g.SetWeight(pos(0, 2), 3)
	require.NoError(t, err)
	for i := 1; i < 4; i++ {
		g.CellAt(i).Previous = i - 1
	}

	path, cost, err := pathfind.Reconstruct(g, pos(0, 3))
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{pos(0, 1), pos(0, 2), pos(0, 3)}, path)
	assert.Equal(t, 5, cost)
}

func TestReconstruct_Broken(t *testing.T) {
	g := newGrid(t, 1, 4, pos(0, 0), pos(0, 3))
	g.CellAt(3).Previous = 2

	_, _, err := pathfind.Reconstruct(g, pos(0, 3))
	assert.ErrorIs(t, err, pathfind.ErrBrokenPath)

	// a two-cell loop that never reaches the start
	g.CellAt(2).Previous = 3
	_, _, err = pathfind.Reconstruct(g, pos(0, 3))
	assert.ErrorIs(t, err, pathfind.ErrBrokenPath)

	_, _, err = pathfind.Reconstruct(g, pos(1, 0))
	assert.ErrorIs(t, err, grid.ErrInvalidPosition)

	_, _, err = pathfind.Reconstruct(nil, pos(0, 0))
	assert.ErrorIs(t, err, pathfind.ErrGridNil)
}
