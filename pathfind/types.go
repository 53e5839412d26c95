// Package pathfind defines the algorithm enum, options and sentinel errors
// for the grid searches.
package pathfind

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for pathfinding.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("pathfind: grid is nil")

	// ErrNoStartOrEnd is returned when the grid lacks a start or an end cell.
	ErrNoStartOrEnd = errors.New("pathfind: grid has no start or no end")

	// ErrUnknownAlgorithm is returned for an Algorithm outside the enum or an
	// unrecognized name.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")

	// ErrBrokenPath is returned by Reconstruct when the predecessor chain ends
	// before reaching the start.
	ErrBrokenPath = errors.New("pathfind: broken predecessor chain")
)

// Algorithm selects a grid search.
type Algorithm int

const (
	// AStar orders the open set by G + H. Optimal with an admissible heuristic.
	AStar Algorithm = iota
	// Dijkstra settles cells by tentative distance. Always optimal.
	Dijkstra
	// Greedy orders the open set by H alone.
	Greedy
	// HillClimb follows strictly decreasing H without backtracking.
	HillClimb
)

var algorithmNames = [...]string{
	AStar:     "astar",
	Dijkstra:  "dijkstra",
	Greedy:    "greedy",
	HillClimb: "hillclimb",
}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm { return []Algorithm{AStar, Dijkstra, Greedy, HillClimb} }

// String returns the lower-case name used by ParseAlgorithm.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool { return a >= 0 && int(a) < len(algorithmNames) }

// Optimal reports whether a guarantees a least-cost path.
func (a Algorithm) Optimal() bool { return a == AStar || a == Dijkstra }

// UsesHeuristic reports whether a consults a heuristic.Kind.
func (a Algorithm) UsesHeuristic() bool { return a != Dijkstra && a.Valid() }

// ParseAlgorithm maps a case-insensitive name to its Algorithm. "a*",
// "hill-climbing" and "greedy-best-first" are accepted as aliases.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "astar", "a*":
		return AStar, nil
	case "dijkstra":
		return Dijkstra, nil
	case "greedy", "greedy-best-first", "best-first":
		return Greedy, nil
	case "hillclimb", "hill-climbing", "hillclimbing":
		return HillClimb, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Option configures a search.
type Option func(*Options)

// Options holds the per-search knobs.
type Options struct {
	// Discovery enables Discovered events for open-set insertions and
	// distance improvements.
	Discovery bool
}

// DefaultOptions returns Options with Discovered events disabled.
func DefaultOptions() Options { return Options{} }

// WithDiscoveryEvents turns on Discovered events.
func WithDiscoveryEvents() Option {
	return func(o *Options) { o.Discovery = true }
}
