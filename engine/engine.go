package engine

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jbraz05/Spotify-Graph-Explorer/bellmanford"
	"github.com/jbraz05/Spotify-Graph-Explorer/bfs"
	"github.com/jbraz05/Spotify-Graph-Explorer/core"
	"github.com/jbraz05/Spotify-Graph-Explorer/dfs"
	"github.com/jbraz05/Spotify-Graph-Explorer/dijkstra"
	"github.com/jbraz05/Spotify-Graph-Explorer/route"
)

// Engine answers queries over one working graph and owns its Original.
//
// Thread Safety:
//
//	Queries, Batch, Stats and Export share a read lock; Negate, NegateRandom
//	and Restore take the write lock, so a multi-pair mutation is never
//	observed half-applied.
type Engine struct {
	mu   sync.RWMutex
	g    *core.Graph
	orig *core.Original

	log          logrus.FieldLogger
	tracer       trace.Tracer
	tel          *telemetry
	batchWorkers int
}

// New wraps g and captures its current state as the Original that Restore
// returns to. A nil g is treated as an empty undirected graph.
func New(g *core.Graph, opts ...Option) *Engine {
	if g == nil {
		g = core.NewGraph()
	}
	o := newOptions(opts)

	return &Engine{
		g:            g,
		orig:         core.Capture(g),
		log:          o.logger,
		tracer:       o.tracerProvider.Tracer(instrumentationName),
		tel:          newTelemetry(o.registerer, o.meterProvider),
		batchWorkers: o.batchWorkers,
	}
}

// Query validates q and runs it against the working graph.
//
// Validation happens before any computation:
//   - unknown algorithm: ErrUnknownAlgorithm;
//   - start not in the graph: *core.UnknownNodeError with role "start";
//   - shortest-path query without End: ErrEndRequired;
//   - End not in the graph: *core.UnknownNodeError with role "end".
//
// "No path" and "negative cycle" are outcomes, not errors; see Result.
func (e *Engine) Query(ctx context.Context, q Query) (*Result, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.query(ctx, q)
}

// query requires e.mu to be held for reading.
func (e *Engine) query(ctx context.Context, q Query) (*Result, error) {
	ctx, span := e.tracer.Start(ctx, "engine.Query", trace.WithAttributes(
		attribute.String("algorithm", q.Algorithm),
		attribute.String("start", q.Start),
		attribute.String("end", q.End),
	))
	defer span.End()

	began := time.Now()
	res, err := e.run(ctx, q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if alg, perr := ParseAlgorithm(q.Algorithm); perr == nil {
			e.tel.observeQuery(ctx, alg, outcomeError, time.Since(began))
		}

		return nil, err
	}

	outcome := res.outcome()
	elapsed := time.Since(began)
	e.tel.observeQuery(ctx, res.Algorithm, outcome, elapsed)
	span.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("path.length", len(res.Path)),
	)
	e.log.WithFields(logrus.Fields{
		"algorithm": res.Algorithm,
		"start":     res.Start,
		"end":       res.End,
		"outcome":   outcome,
		"elapsed":   elapsed,
	}).Debug("query answered")

	return res, nil
}

func (e *Engine) run(ctx context.Context, q Query) (*Result, error) {
	alg, err := ParseAlgorithm(q.Algorithm)
	if err != nil {
		return nil, err
	}
	if !e.g.HasVertex(q.Start) {
		return nil, core.NewUnknownNodeError("start", q.Start)
	}

	res := &Result{Algorithm: alg, Start: q.Start}
	if alg.ShortestPath() {
		if q.End == "" {
			return nil, ErrEndRequired
		}
		if !e.g.HasVertex(q.End) {
			return nil, core.NewUnknownNodeError("end", q.End)
		}
		res.End = q.End
	}

	switch alg {
	case BFS:
		r, err := bfs.BFS(e.g, q.Start, bfs.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
		res.setTraversal(r.Order)
	case DFS:
		r, err := dfs.DFS(e.g, q.Start, dfs.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
		res.setTraversal(r.Order)
	case Dijkstra:
		if e.g.HasNegativeWeights() {
			e.log.WithField("start", q.Start).Warn("dijkstra on a graph with negative arcs; distances may not be optimal")
		}
		dist, prev, err := dijkstra.Dijkstra(e.g, dijkstra.Source(q.Start), dijkstra.WithTarget(q.End))
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
		res.setRoute(dist[q.End], route.Reconstruct(prev, q.Start, q.End))
	case BellmanFord:
		r, err := bellmanford.BellmanFord(e.g, bellmanford.Source(q.Start), bellmanford.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
		if r.NegativeCycle {
			res.Path = []string{}
			res.HasNegativeCycle = true
			res.Cycle = r.Cycle
			res.Info = "Bellman-Ford: negative cycle detected; the shortest path is undefined."
			break
		}
		res.setRoute(r.Dist[q.End], r.PathTo(q.End))
	}

	return res, nil
}

func (r *Result) setTraversal(order []string) {
	r.Path = order
	r.Visited = len(order)
	r.Info = fmt.Sprintf("%s: %d nodes visited.", r.Algorithm.Title(), r.Visited)
}

func (r *Result) setRoute(dist float64, path []string) {
	if math.IsInf(dist, 1) || len(path) == 0 {
		r.Path = []string{}
		r.Info = fmt.Sprintf("%s: no path between %s and %s.", r.Algorithm.Title(), r.Start, r.End)

		return
	}
	r.Path = path
	r.Distance = &dist
	r.Info = fmt.Sprintf("%s: distance %.2f | %d steps.", r.Algorithm.Title(), dist, len(path))
}

// Stats summarizes the working graph.
func (e *Engine) Stats() core.GraphStats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.g.Stats()
}

// HasVertex reports whether id is a node of the working graph.
func (e *Engine) HasVertex(id string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.g.HasVertex(id)
}
