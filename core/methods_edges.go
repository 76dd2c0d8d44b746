package core

import "sort"

// AddEdge records a collaboration between u and v with the given weight.
//
// Implementation:
//   - Stage 1: Allocate handles for u and v if absent.
//   - Stage 2: Store u→v when no such arc exists or weight is strictly smaller.
//   - Stage 3: On undirected graphs apply the same rule to v→u, independently.
//   - Stage 4: Apply WithTrack to the unordered pair (last write wins).
//
// Behavior highlights:
//   - Parallel edges collapse to the minimum weight seen, per direction.
//   - Never fails; the vertex set only grows.
//
// Complexity: O(deg(u) + deg(v)) for the sorted insert.
func (g *Graph) AddEdge(u, v string, weight float64, opts ...EdgeOption) {
	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	hu := g.ensure(u)
	hv := g.ensure(v)
	g.keepMin(hu, hv, weight)
	if !g.directed {
		g.keepMin(hv, hu, weight)
	}
	if cfg.track != "" {
		g.tracks[MakePair(u, v)] = cfg.track
	}
	g.snap.Store(nil)
}

// SetWeight overwrites (or creates) the single directed arc u→v.
// Unlike AddEdge it ignores the minimization rule and never mirrors.
// Returns *UnknownNodeError if either endpoint is missing.
func (g *Graph) SetWeight(u, v string, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	hu, ok := g.index[u]
	if !ok {
		return NewUnknownNodeError("source", u)
	}
	hv, ok := g.index[v]
	if !ok {
		return NewUnknownNodeError("target", v)
	}
	g.setArc(hu, hv, weight)
	g.snap.Store(nil)

	return nil
}

// RemoveArc deletes the directed arc u→v and reports whether it existed.
// The reverse arc and the pair's track label are left untouched.
func (g *Graph) RemoveArc(u, v string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	hu, ok := g.index[u]
	if !ok {
		return false
	}
	hv, ok := g.index[v]
	if !ok {
		return false
	}
	if !g.removeArc(hu, hv) {
		return false
	}
	g.snap.Store(nil)

	return true
}

// Weight returns the weight of the directed arc u→v.
func (g *Graph) Weight(u, v string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	hu, ok := g.index[u]
	if !ok {
		return 0, false
	}
	hv, ok := g.index[v]
	if !ok {
		return 0, false
	}
	pos, found := g.find(hu, hv)
	if !found {
		return 0, false
	}

	return g.out[hu][pos].weight, true
}

// Track returns the label of the unordered pair {u, v}.
func (g *Graph) Track(u, v string) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	name, ok := g.tracks[MakePair(u, v)]

	return name, ok
}

// EdgeCount returns the number of stored directed arcs.
// An undirected edge between distinct vertices counts twice.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, arcs := range g.out {
		n += len(arcs)
	}

	return n
}

// HasNegativeWeights reports whether any stored arc has a weight below zero.
func (g *Graph) HasNegativeWeights() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, arcs := range g.out {
		for _, a := range arcs {
			if a.weight < 0 {
				return true
			}
		}
	}

	return false
}

// Pairs returns every unordered pair joined by at least one arc, normalized
// and sorted by (U, V).
// Complexity: O(E log E)
func (g *Graph) Pairs() []Pair {
	g.mu.RLock()
	seen := make(map[Pair]struct{})
	for h, arcs := range g.out {
		for _, a := range arcs {
			seen[MakePair(g.names[h], g.names[a.to])] = struct{}{}
		}
	}
	g.mu.RUnlock()

	res := make([]Pair, 0, len(seen))
	for p := range seen {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].U != res[j].U {
			return res[i].U < res[j].U
		}

		return res[i].V < res[j].V
	})

	return res
}

// find locates the arc hu→hv in hu's sorted out list.
// Returns the insertion position when absent.
func (g *Graph) find(hu, hv int) (int, bool) {
	arcs := g.out[hu]
	target := g.names[hv]
	pos := sort.Search(len(arcs), func(i int) bool {
		return g.names[arcs[i].to] >= target
	})

	return pos, pos < len(arcs) && arcs[pos].to == hv
}

// keepMin applies the minimization rule to hu→hv.
func (g *Graph) keepMin(hu, hv int, weight float64) {
	pos, found := g.find(hu, hv)
	if found {
		if weight < g.out[hu][pos].weight {
			g.out[hu][pos].weight = weight
		}
		return
	}
	g.insertAt(hu, pos, arc{to: hv, weight: weight})
}

// setArc stores hu→hv with the given weight unconditionally.
func (g *Graph) setArc(hu, hv int, weight float64) {
	pos, found := g.find(hu, hv)
	if found {
		g.out[hu][pos].weight = weight
		return
	}
	g.insertAt(hu, pos, arc{to: hv, weight: weight})
}

// removeArc drops hu→hv, keeping the list sorted.
func (g *Graph) removeArc(hu, hv int) bool {
	pos, found := g.find(hu, hv)
	if !found {
		return false
	}
	arcs := g.out[hu]
	copy(arcs[pos:], arcs[pos+1:])
	g.out[hu] = arcs[:len(arcs)-1]

	return true
}

func (g *Graph) insertAt(hu, pos int, a arc) {
	arcs := append(g.out[hu], arc{})
	copy(arcs[pos+1:], arcs[pos:])
	arcs[pos] = a
	g.out[hu] = arcs
}
