// Package bellmanford implements the Bellman-Ford single-source shortest-path
// algorithm over the collaboration graph.
//
// Unlike package dijkstra it is correct in the presence of negative arc
// weights, such as those produced by core.NegateAndDirect, and it reports
// whether a negative cycle is reachable from the source.
//
// Behavior:
//
//   - Up to |V|-1 relaxation passes, stopping early after a quiet pass.
//   - Only arcs leaving a reached vertex are relaxed, so Result.NegativeCycle
//     is true exactly when a negative cycle is reachable from the source.
//   - When a cycle is found, Result.Cycle lists it in traversal order, closed
//     (first element repeated at the end). Dist and Prev are then advisory.
//   - Unreached vertices keep +Inf in Result.Dist and have no Result.Prev entry.
//
// Errors:
//
//   - ErrEmptySource, ErrNilGraph.
//   - *core.UnknownNodeError (matches core.ErrVertexNotFound) for a missing source.
//   - ctx.Err() when the context passed with WithContext is done between passes.
//
// Example:
//
//	res, err := bellmanford.BellmanFord(g, bellmanford.Source("A"))
//	if err == nil && !res.NegativeCycle {
//		path := res.PathTo("C")
//	}
package bellmanford
