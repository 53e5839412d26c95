package heuristic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/searchviz/grid"
)

func TestEstimate(t *testing.T) {
	a := grid.Position{Row: 1, Col: 2}
	b := grid.Position{Row: 4, Col: 6}

	cases := []struct {
		kind Kind
		want float64
	}{
		{Manhattan, 7},
		{Euclidean, 5},
		{Chebyshev, 4},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.kind.Estimate(a, b), 1e-9)
			assert.InDelta(t, tc.want, Estimate(b, a, tc.kind), 1e-9, "symmetric")
			assert.Zero(t, tc.kind.Estimate(a, a))
		})
	}
}

// TestEstimate_Ordering checks Chebyshev ≤ Euclidean ≤ Manhattan on random pairs.
func TestEstimate_Ordering(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		a := grid.Position{Row: rng.Intn(50), Col: rng.Intn(50)}
		b := grid.Position{Row: rng.Intn(50), Col: rng.Intn(50)}
		m, e, c := Manhattan.Estimate(a, b), Euclidean.Estimate(a, b), Chebyshev.Estimate(a, b)
		require.LessOrEqual(t, c, e+1e-9)
		require.LessOrEqual(t, e, m+1e-9)
	}
}

func TestParse(t *testing.T) {
	for _, k := range Kinds() {
		got, err := Parse(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := Parse("  Euclidean ")
	require.NoError(t, err)
	assert.Equal(t, Euclidean, got)

	_, err = Parse("octile")
	assert.ErrorIs(t, err, ErrUnknownHeuristic)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "heuristic(9)", Kind(9).String())
	assert.False(t, Kind(-1).Valid())
	assert.True(t, Chebyshev.Admissible())
	assert.False(t, Kind(3).Admissible())
	assert.Equal(t, 7.0, Kind(42).Estimate(grid.Position{}, grid.Position{Row: 3, Col: 4}))
}

func TestAbsDiff(t *testing.T) {
	assert.Equal(t, 3, absDiff(2, 5))
	assert.Equal(t, int64(3), absDiff[int64](5, 2))
	assert.True(t, math.Abs(float64(absDiff(-4, 4))) == 8)
}
