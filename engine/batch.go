package engine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Batch runs qs concurrently, at most WithBatchWorkers at a time, against one
// consistent state of the graph. Results keep the order of qs. The first
// failing query cancels the rest and its error is returned, prefixed with
// its index.
func (e *Engine) Batch(ctx context.Context, qs []Query) ([]*Result, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	ctx, span := e.tracer.Start(ctx, "engine.Batch", trace.WithAttributes(
		attribute.Int("queries", len(qs)),
		attribute.Int("workers", e.batchWorkers),
	))
	defer span.End()

	results := make([]*Result, len(qs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.batchWorkers)
	for i, q := range qs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := e.query(gctx, q)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
