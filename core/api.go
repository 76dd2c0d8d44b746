package core

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	// Vertices is |V|.
	Vertices int

	// Edges is the total out-degree on directed graphs and half of it on
	// undirected graphs (each collaboration is stored as two arcs).
	Edges int

	// AvgDegree is the mean out-degree; 0 on an empty graph.
	AvgDegree float64

	// NegativeArcs counts arcs with a weight below zero.
	NegativeArcs int

	// Degrees maps every vertex ID to its out-degree.
	Degrees map[string]int
}

// Stats produces a snapshot of vertex and edge counts and the degree
// distribution.
//
// Complexity: O(V + E)
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{
		Vertices: len(g.names),
		Degrees:  make(map[string]int, len(g.names)),
	}
	total := 0
	for h, arcs := range g.out {
		st.Degrees[g.names[h]] = len(arcs)
		total += len(arcs)
		for _, a := range arcs {
			if a.weight < 0 {
				st.NegativeArcs++
			}
		}
	}
	if g.directed {
		st.Edges = total
	} else {
		st.Edges = total / 2
	}
	if st.Vertices > 0 {
		st.AvgDegree = float64(total) / float64(st.Vertices)
	}

	return st
}

// Prune removes self-loops, then every vertex left with no incident arc in
// either direction, and returns the number of vertices removed.
//
// Implementation:
//   - Stage 1: Drop every arc h→h together with the pair's track label.
//   - Stage 2: Mark vertices that are neither a source nor a target of an arc.
//   - Stage 3: Renumber surviving handles densely, preserving their relative order.
//
// Behavior highlights:
//   - Handles obtained before Prune are invalid afterwards; IDs are stable.
//   - Sinks of a directed graph are kept, so no arc ever points at a removed vertex.
//
// Complexity: O(V + E)
func (g *Graph) Prune() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.names)
	incident := make([]bool, n)
	for h := range g.out {
		if g.removeArc(h, h) {
			delete(g.tracks, MakePair(g.names[h], g.names[h]))
		}
		for _, a := range g.out[h] {
			incident[h] = true
			incident[a.to] = true
		}
	}

	remap := make([]int, n)
	kept := 0
	for h := 0; h < n; h++ {
		if !incident[h] {
			remap[h] = -1
			continue
		}
		remap[h] = kept
		kept++
	}
	removed := n - kept
	if removed == 0 {
		g.snap.Store(nil)
		return 0
	}

	names := make([]string, 0, kept)
	out := make([][]arc, 0, kept)
	index := make(map[string]int, kept)
	for h := 0; h < n; h++ {
		if remap[h] < 0 {
			continue
		}
		arcs := g.out[h]
		for i := range arcs {
			arcs[i].to = remap[arcs[i].to]
		}
		index[g.names[h]] = len(names)
		names = append(names, g.names[h])
		out = append(out, arcs)
	}
	g.names, g.out, g.index = names, out, index
	g.snap.Store(nil)

	return removed
}
