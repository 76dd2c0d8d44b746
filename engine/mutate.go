package engine

import (
	"context"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jbraz05/Spotify-Graph-Explorer/core"
)

const (
	opNegate  = "negate"
	opRestore = "restore"
)

// Negate applies core.NegateAndDirect for pairs against the captured
// Original and returns the number of arcs negated.
func (e *Engine) Negate(ctx context.Context, pairs []core.Pair) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.negate(ctx, pairs)
}

// NegateRandom picks up to n distinct pairs of the working graph with rng and
// negates them. It returns the chosen pairs and the number of arcs negated.
func (e *Engine) NegateRandom(ctx context.Context, rng *rand.Rand, n int) ([]core.Pair, int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	picked := PickPairs(rng, e.g.Pairs(), n)

	return picked, e.negate(ctx, picked)
}

// negate requires e.mu to be held for writing.
func (e *Engine) negate(ctx context.Context, pairs []core.Pair) int {
	_, span := e.tracer.Start(ctx, "engine.Negate", trace.WithAttributes(
		attribute.Int("pairs.requested", len(pairs)),
	))
	defer span.End()

	negated := core.NegateAndDirect(e.g, e.orig, pairs)
	span.SetAttributes(attribute.Int("arcs.negated", negated))
	e.tel.observeMutation(opNegate, negated)
	e.log.WithFields(logrus.Fields{
		"requested": len(pairs),
		"negated":   negated,
	}).Info("edges negated and made one-way")

	return negated
}

// Restore resets the working graph to the Original captured by New.
func (e *Engine) Restore(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, span := e.tracer.Start(ctx, "engine.Restore")
	defer span.End()

	if err := core.Restore(e.g, e.orig); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}
	e.tel.observeMutation(opRestore, 0)
	e.log.Info("weights restored to their original values")

	return nil
}

// PickPairs samples min(n, len(pairs)) distinct pairs without replacement.
// pairs is not modified. A nil rng or n ≤ 0 yields no pairs.
func PickPairs(rng *rand.Rand, pairs []core.Pair, n int) []core.Pair {
	if rng == nil || n <= 0 || len(pairs) == 0 {
		return nil
	}
	if n > len(pairs) {
		n = len(pairs)
	}

	pool := make([]core.Pair, len(pairs))
	copy(pool, pairs)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n]
}
