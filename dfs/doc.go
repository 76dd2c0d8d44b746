// Package dfs implements depth‑first search traversal on a core.Graph.
//
// What:
//
//   - DFS explores as far as possible along each branch before backtracking,
//     expanding neighbors in ascending ID order. It reports:
//   - Order: discovery (pre‑order) sequence, every reachable vertex once
//   - PostOrder: finish sequence
//   - Depth, Parent, Visited maps describing the DFS tree
//   - Pre‑order and post‑order hooks, cancellation via context.Context,
//     depth limiting, neighbor filtering, and forest traversal.
//
// The walker keeps an explicit frame stack instead of recursing, so the
// traversal depth is bounded by memory rather than the goroutine stack while
// producing exactly the order a recursive DFS would.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the frame stack and metadata maps.
package dfs
