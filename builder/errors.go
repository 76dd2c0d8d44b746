// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors. Constructors wrap them with their method name
// (fmt.Errorf("%s: ...: %w", method, ..., ErrX)); callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure (nil graph or constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
