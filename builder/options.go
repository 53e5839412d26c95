// SPDX-License-Identifier: MIT
// Package: searchviz/builder
//
// options.go - functional options and the resolved builder configuration.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     constructors themselves never panic.
//   • Determinism is explicit: randomness only via WithRandomWeights(seed, ...).

package builder

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/searchviz/core"
)

// BuilderOption customizes the builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	// weightFn returns the weight of the next emitted edge.
	weightFn func() int64
}

// newBuilderConfig constructs a config with DefaultWeight on every edge and
// applies opts in order.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		weightFn: func() int64 { return core.DefaultWeight },
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func (c *builderConfig) nextWeight() int64 { return c.weightFn() }

// WithConstantWeight assigns w to every edge. Panics on w < 0.
func WithConstantWeight(w int64) BuilderOption {
	if w < 0 {
		panic("builder: WithConstantWeight(negative)")
	}

	return func(c *builderConfig) { c.weightFn = func() int64 { return w } }
}

// WithRandomWeights draws every edge weight uniformly from [lo, hi] using a
// generator seeded with seed. Panics on lo < 0 or hi < lo.
func WithRandomWeights(seed uint64, lo, hi int64) BuilderOption {
	if lo < 0 || hi < lo {
		panic("builder: WithRandomWeights invalid range")
	}

	return func(c *builderConfig) {
		rng := rand.New(rand.NewSource(seed))
		span := hi - lo + 1
		c.weightFn = func() int64 { return lo + rng.Int63n(span) }
	}
}
