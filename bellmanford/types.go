// SPDX-License-Identifier: MIT
// Package: bellmanford
//
// types.go - options, sentinel errors and the Result container.

package bellmanford

import (
	"context"
	"errors"

	"github.com/jbraz05/Spotify-Graph-Explorer/route"
)

var (
	// ErrEmptySource indicates that Source was not set.
	ErrEmptySource = errors.New("bellmanford: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")
)

// Options configures a BellmanFord run.
type Options struct {
	Source string
	// Ctx is checked once per relaxation pass. Nil means context.Background().
	Ctx context.Context
}

// Option mutates Options.
type Option func(*Options)

// Source sets the starting vertex ID. Must be supplied.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithContext makes the run abort with ctx.Err() between passes.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// Result is the outcome of a single-source run.
//
// When NegativeCycle is true, Dist and Prev are advisory only and Cycle holds
// one negative cycle reachable from Source, closed so that Cycle[0] equals
// Cycle[len(Cycle)-1].
type Result struct {
	Source        string
	Dist          map[string]float64 // every vertex; +Inf when unreached
	Prev          map[string]string  // reached vertices except Source
	NegativeCycle bool
	Cycle         []string
}

// PathTo returns the forward path Source→target, or an empty slice when
// target was not reached.
func (r *Result) PathTo(target string) []string {
	return route.Reconstruct(r.Prev, r.Source, target)
}
