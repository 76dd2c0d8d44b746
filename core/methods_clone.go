// File: methods_clone.go
// Role: Deep copies of a Graph, and the in-place replacement used by Restore.
// Concurrency:
//   - Read lock on the source only; the copy is private until returned.

package core

// Clone returns a deep copy of g: directedness, vertex handles, arcs and
// track labels. Handles are preserved, so a handle valid in g is valid in
// the clone.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(WithDirected(g.directed), WithCapacity(len(g.names)))
	c.copyFrom(g)

	return c
}

// copyFrom replaces g's catalog with a deep copy of src's.
// Caller must hold g's write lock (or own g exclusively) and src's read lock.
func (g *Graph) copyFrom(src *Graph) {
	g.directed = src.directed
	g.names = make([]string, len(src.names))
	copy(g.names, src.names)
	g.index = make(map[string]int, len(src.index))
	for id, h := range src.index {
		g.index[id] = h
	}
	g.out = make([][]arc, len(src.out))
	for h, arcs := range src.out {
		if len(arcs) == 0 {
			continue
		}
		g.out[h] = make([]arc, len(arcs))
		copy(g.out[h], arcs)
	}
	g.tracks = make(map[Pair]string, len(src.tracks))
	for p, name := range src.tracks {
		g.tracks[p] = name
	}
	g.snap.Store(nil)
}
