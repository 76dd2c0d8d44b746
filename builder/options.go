// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options resolving into builderConfig.
// Option constructors panic on nil/invalid arguments; that is a programmer
// error caught at fixture-definition time.

package builder

import "math/rand"

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID strategy.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand uses r for every stochastic choice.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a private RNG, making stochastic constructors reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight distribution.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithTrackNames sets the track label strategy used by Collaborations.
func WithTrackNames(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithTrackNames(nil)")
	}
	return func(c *builderConfig) {
		c.trackFn = fn
	}
}
