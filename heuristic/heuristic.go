// Package heuristic estimates the remaining distance between two grid cells
// for the informed searches in package pathfind.
//
// Kinds:
//
//   - Manhattan  Δr + Δc            admissible on a 4-connected grid with weights ≥ 1.
//   - Euclidean  √(Δr² + Δc²)       admissible, weaker than Manhattan.
//   - Chebyshev  max(Δr, Δc)        admissible, weakest of the three.
//
// All estimates are pure functions of the two positions.
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/searchviz/grid"
)

// ErrUnknownHeuristic is returned by Parse for an unrecognized name.
var ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")

// Kind selects a distance estimate.
type Kind int

const (
	Manhattan Kind = iota
	Euclidean
	Chebyshev
)

var names = [...]string{
	Manhattan: "manhattan",
	Euclidean: "euclidean",
	Chebyshev: "chebyshev",
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind { return []Kind{Manhattan, Euclidean, Chebyshev} }

// String returns the lower-case name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return fmt.Sprintf("heuristic(%d)", int(k))
	}

	return names[k]
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k >= 0 && int(k) < len(names) }

// Admissible reports whether k never overestimates the true cost on a
// 4-connected grid whose cells weigh at least 1.
func (k Kind) Admissible() bool { return k.Valid() }

// Parse maps a case-insensitive name to its Kind.
func Parse(name string) (Kind, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == want {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// Estimate returns the k-distance from a to b. Unknown kinds fall back to
// Manhattan.
func (k Kind) Estimate(a, b grid.Position) float64 {
	dr := absDiff(a.Row, b.Row)
	dc := absDiff(a.Col, b.Col)
	switch k {
	case Euclidean:
		return math.Sqrt(float64(dr*dr + dc*dc))
	case Chebyshev:
		return float64(max(dr, dc))
	default:
		return float64(dr + dc)
	}
}

// Estimate is the function form of Kind.Estimate.
func Estimate(a, b grid.Position, k Kind) float64 { return k.Estimate(a, b) }

// absDiff returns |x - y|.
func absDiff[T constraints.Signed](x, y T) T {
	if x > y {
		return x - y
	}

	return y - x
}
