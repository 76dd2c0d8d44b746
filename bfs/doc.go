// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence (every reachable vertex exactly once)
//   - Depth: map from vertex → hops from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Weights are ignored; only the presence of an arc matters.
//   - Arcs are followed as stored, so after a negate-and-direct mutation a
//     collaboration may be traversable in one direction only.
//
// Determinism
//
//	Neighbors are expanded in ascending ID order (the order of the store's
//	CSR snapshot), so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Arcs|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "Drake",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(2),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - *core.UnknownNodeError  if the start vertex does not exist (matches core.ErrVertexNotFound).
//   - ErrOptionViolation      for an invalid Option (e.g. negative MaxDepth).
//   - context errors and wrapped OnVisit hook errors.
package bfs
