// SPDX-License-Identifier: MIT
// Package: bellmanford
//
// bellmanford.go - pass-based relaxation with negative-cycle detection.

package bellmanford

import (
	"context"
	"math"

	"github.com/jbraz05/Spotify-Graph-Explorer/core"
)

// BellmanFord computes shortest distances from Options.Source over g,
// accepting negative arc weights.
//
// Steps:
//  1. Validate Source (ErrEmptySource), g (ErrNilGraph) and membership
//     (*core.UnknownNodeError).
//  2. Relax every arc whose tail is reached, up to |V|-1 passes; stop early
//     after a pass that changes nothing.
//  3. One extra pass: any arc that still relaxes proves a negative cycle
//     reachable from Source; its witness is walked back to extract the cycle.
//
// Complexity: O(V·E) time, O(V) extra space.
func BellmanFord(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := Options{Ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}

	adj := g.Adjacency()
	src, ok := adj.Index(cfg.Source)
	if !ok {
		return nil, core.NewUnknownNodeError("source", cfg.Source)
	}

	n := adj.Len()
	dist := make([]float64, n)
	prev := make([]int, n)
	for h := range dist {
		dist[h] = math.Inf(1)
		prev[h] = -1
	}
	dist[src] = 0

	for pass := 1; pass < n; pass++ {
		if err := cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		if !relaxAll(adj, dist, prev) {
			break
		}
	}

	res := &Result{Source: cfg.Source}
	if witness := findRelaxable(adj, dist, prev); witness >= 0 {
		res.NegativeCycle = true
		res.Cycle = extractCycle(adj, prev, witness)
	}
	res.Dist, res.Prev = export(adj, dist, prev)

	return res, nil
}

// relaxAll performs one pass over all arcs and reports whether any distance dropped.
func relaxAll(adj *core.Adjacency, dist []float64, prev []int) bool {
	changed := false
	for u := 0; u < adj.Len(); u++ {
		if math.IsInf(dist[u], 1) {
			continue
		}
		targets, weights := adj.Out(u)
		for i, v := range targets {
			if nd := dist[u] + weights[i]; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				changed = true
			}
		}
	}

	return changed
}

// findRelaxable returns the head of the first arc that still relaxes, or -1.
// The predecessor of that head is updated so the walk back enters the cycle.
func findRelaxable(adj *core.Adjacency, dist []float64, prev []int) int {
	for u := 0; u < adj.Len(); u++ {
		if math.IsInf(dist[u], 1) {
			continue
		}
		targets, weights := adj.Out(u)
		for i, v := range targets {
			if dist[u]+weights[i] < dist[v] {
				prev[v] = u

				return v
			}
		}
	}

	return -1
}

// extractCycle walks |V| predecessor steps from witness, which is guaranteed
// to land on the cycle, then collects it in forward order and closes it.
func extractCycle(adj *core.Adjacency, prev []int, witness int) []string {
	x := witness
	for i := 0; i < adj.Len(); i++ {
		if prev[x] < 0 {
			return nil
		}
		x = prev[x]
	}

	back := []int{x}
	for v := prev[x]; v != x; v = prev[v] {
		back = append(back, v)
	}

	cycle := make([]string, 0, len(back)+1)
	for i := len(back) - 1; i >= 0; i-- {
		cycle = append(cycle, adj.Name(back[i]))
	}

	return append(cycle, cycle[0])
}

func export(adj *core.Adjacency, dist []float64, prev []int) (map[string]float64, map[string]string) {
	d := make(map[string]float64, len(dist))
	p := make(map[string]string)
	for h, v := range dist {
		id := adj.Name(h)
		d[id] = v
		if prev[h] >= 0 {
			p[id] = adj.Name(prev[h])
		}
	}

	return d, p
}
