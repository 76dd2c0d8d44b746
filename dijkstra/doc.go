// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// collaboration graph.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |arcs|.
//   - It relies on a min-heap (priority queue) to always settle the next-closest vertex;
//     ties are broken by vertex ID so equal-cost runs are reproducible.
//   - With WithTarget the run stops as soon as the target is settled.
//
// Negative weights:
//
//	Arcs made negative by core.NegateAndDirect are accepted, not rejected. A settled
//	vertex is never reopened, so on such graphs the reported distances may be larger
//	than the true optimum; use package bellmanford when negative arcs are present.
//	The run still terminates, even if the graph contains a negative cycle, and the
//	returned dist/prev pair stays internally consistent (dist[v] = dist[prev[v]] + w).
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    Source was not set.
//   - ErrNilGraph:       g is nil.
//   - *core.UnknownNodeError (matches core.ErrVertexNotFound) for a missing source or target.
//   - ErrBadMaxDistance / ErrBadInfThreshold: raised as panics by the option constructors.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithTarget("C"))
//	path := route.Reconstruct(prev, "A", "C")
package dijkstra
