package core

import "sort"

// AddVertex inserts an isolated vertex if absent. Idempotent.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[id]; ok {
		return
	}
	g.ensure(id)
	g.snap.Store(nil)
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	out := make([]string, len(g.names))
	copy(out, g.names)
	g.mu.RUnlock()

	sort.Strings(out)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.names)
}

// Neighbors returns the arcs leaving id, sorted ascending by neighbor ID.
// Unknown vertices and vertices without out-arcs both yield nil.
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id string) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	h, ok := g.index[id]
	if !ok || len(g.out[h]) == 0 {
		return nil
	}
	res := make([]Neighbor, len(g.out[h]))
	for i, a := range g.out[h] {
		res[i] = Neighbor{ID: g.names[a.to], Weight: a.weight}
	}

	return res
}

// Degree returns the number of arcs leaving id (0 for unknown vertices).
func (g *Graph) Degree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	h, ok := g.index[id]
	if !ok {
		return 0
	}

	return len(g.out[h])
}

// ensure returns the handle of id, allocating one if needed.
// Caller must hold the write lock.
func (g *Graph) ensure(id string) int {
	if h, ok := g.index[id]; ok {
		return h
	}
	h := len(g.names)
	g.names = append(g.names, id)
	g.out = append(g.out, nil)
	g.index[id] = h

	return h
}
