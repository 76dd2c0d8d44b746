package dijkstra

import (
	"container/heap"
	"math"

	"github.com/jbraz05/Spotify-Graph-Explorer/core"
)

// Dijkstra computes shortest distances from Options.Source over g.
//
// Returns:
//
//   - dist: every vertex of g mapped to its distance; unreached vertices map to +Inf.
//   - prev: predecessor on the chosen path for every reached vertex except the source.
//   - err:  ErrEmptySource, ErrNilGraph, or *core.UnknownNodeError.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source, and Target when given (*core.UnknownNodeError).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	adj := g.Adjacency()
	src, ok := adj.Index(cfg.Source)
	if !ok {
		return nil, nil, core.NewUnknownNodeError("source", cfg.Source)
	}
	target := -1
	if cfg.Target != "" {
		if target, ok = adj.Index(cfg.Target); !ok {
			return nil, nil, core.NewUnknownNodeError("target", cfg.Target)
		}
	}

	n := adj.Len()
	r := &runner{
		adj:     adj,
		options: cfg,
		target:  target,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      nodePQ{adj: adj},
	}
	r.init(src)
	r.process()

	return r.export()
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     *core.Adjacency
	options Options
	target  int       // handle of Options.Target, -1 when unset
	dist    []float64 // handle → best known distance
	prev    []int     // handle → predecessor handle, -1 when none
	visited []bool    // handle → distance finalized
	pq      nodePQ
}

// init sets dist to +Inf everywhere but the source and seeds the heap.
func (r *runner) init(src int) {
	for h := range r.dist {
		r.dist[h] = math.Inf(1)
		r.prev[h] = -1
	}
	r.dist[src] = 0
	heap.Push(&r.pq, nodeItem{h: src, dist: 0})
}

// process settles vertices in (distance, ID) order until the heap drains,
// the target is settled, or the next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.h
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == r.target {
			break
		}
		r.relax(u)
	}
}

// relax examines each arc leaving u. Settled neighbors are never reopened,
// which is what keeps the run finite when negative arcs are present.
func (r *runner) relax(u int) {
	targets, weights := r.adj.Out(u)
	for i, v := range targets {
		if r.visited[v] {
			continue
		}
		w := weights[i]
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		nd := r.dist[u] + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{h: v, dist: nd})
	}
}

// export converts handle-indexed state into ID-keyed maps.
func (r *runner) export() (map[string]float64, map[string]string, error) {
	dist := make(map[string]float64, len(r.dist))
	prev := make(map[string]string)
	for h, d := range r.dist {
		id := r.adj.Name(h)
		dist[id] = d
		if p := r.prev[h]; p >= 0 {
			prev[id] = r.adj.Name(p)
		}
	}

	return dist, prev, nil
}

// nodeItem is a heap entry: a vertex handle and the distance it was pushed with.
type nodeItem struct {
	h    int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, vertex ID). Stale
// entries are left in place and skipped when popped (lazy decrease-key).
type nodePQ struct {
	adj   *core.Adjacency
	items []nodeItem
}

func (pq nodePQ) Len() int { return len(pq.items) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return pq.adj.Name(a.h) < pq.adj.Name(b.h)
}

func (pq nodePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *nodePQ) Push(x any) { pq.items = append(pq.items, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
