package core

// Adjacency is an immutable compressed-sparse-row view of a Graph.
//
// Arcs leaving handle h occupy targets[offsets[h]:offsets[h+1]] with matching
// weights, ordered ascending by neighbor ID. Algorithms read an Adjacency
// instead of the live Graph so a whole run observes one consistent state and
// holds no lock while it computes.
type Adjacency struct {
	directed bool
	names    []string
	index    map[string]int
	offsets  []int
	targets  []int
	weights  []float64
}

// Adjacency returns the CSR snapshot of the current state.
// The snapshot is cached until the next mutation, so repeated queries between
// mutations share one build.
// Complexity: O(V + E) on a cache miss, O(1) otherwise.
func (g *Graph) Adjacency() *Adjacency {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if a := g.snap.Load(); a != nil {
		return a
	}
	a := g.buildAdjacency()
	// Writers clear snap under the write lock, so no mutation can interleave here.
	if !g.snap.CompareAndSwap(nil, a) {
		return g.snap.Load()
	}

	return a
}

// buildAdjacency flattens out into CSR form. Caller must hold a lock.
func (g *Graph) buildAdjacency() *Adjacency {
	n := len(g.names)
	a := &Adjacency{
		directed: g.directed,
		names:    make([]string, n),
		index:    make(map[string]int, n),
		offsets:  make([]int, n+1),
	}
	copy(a.names, g.names)
	total := 0
	for h, arcs := range g.out {
		a.index[g.names[h]] = h
		a.offsets[h] = total
		total += len(arcs)
	}
	a.offsets[n] = total
	a.targets = make([]int, 0, total)
	a.weights = make([]float64, 0, total)
	for _, arcs := range g.out {
		for _, e := range arcs {
			a.targets = append(a.targets, e.to)
			a.weights = append(a.weights, e.weight)
		}
	}

	return a
}

// Len returns the number of vertices.
func (a *Adjacency) Len() int { return len(a.names) }

// ArcCount returns the number of directed arcs.
func (a *Adjacency) ArcCount() int { return len(a.targets) }

// Directed reports the directedness of the graph the snapshot was taken from.
func (a *Adjacency) Directed() bool { return a.directed }

// Index returns the handle of id.
func (a *Adjacency) Index(id string) (int, bool) {
	h, ok := a.index[id]

	return h, ok
}

// Name returns the ID of handle h.
func (a *Adjacency) Name(h int) string { return a.names[h] }

// Out returns the targets and weights of the arcs leaving h.
// The returned slices alias the snapshot and must not be modified.
func (a *Adjacency) Out(h int) ([]int, []float64) {
	lo, hi := a.offsets[h], a.offsets[h+1]

	return a.targets[lo:hi:hi], a.weights[lo:hi:hi]
}
