// SPDX-License-Identifier: MIT

package core

// Original is an immutable deep copy of a Graph captured right after load.
// Mutations read the weights they negate from it and Restore copies it back,
// so repeated negate/restore cycles always start from the same state.
type Original struct {
	g *Graph
}

// Capture takes the immutable snapshot of g. Later changes to g are not
// reflected in the returned Original.
// Complexity: O(V + E)
func Capture(g *Graph) *Original {
	return &Original{g: g.Clone()}
}

// Weight returns the captured weight of the directed arc u→v.
func (o *Original) Weight(u, v string) (float64, bool) { return o.g.Weight(u, v) }

// VertexCount returns the number of captured vertices.
func (o *Original) VertexCount() int { return o.g.VertexCount() }

// Pairs returns the captured unordered pairs, sorted.
func (o *Original) Pairs() []Pair { return o.g.Pairs() }

// Directed reports the directedness of the captured graph.
func (o *Original) Directed() bool { return o.g.directed }

// NegateAndDirect turns each listed edge into a single negative arc.
//
// For every pair (U, V), taken in the order given:
//   - if the original holds U→V, the working arc U→V becomes -orig[U][V];
//   - the working arc V→U is removed whenever present.
//
// Pairs whose endpoints are missing from g are skipped. The whole batch is
// applied under one write lock. Returns the number of arcs negated.
//
// Complexity: O(k · deg) for k pairs.
func NegateAndDirect(g *Graph, orig *Original, pairs []Pair) int {
	if g == nil || orig == nil {
		return 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	negated := 0
	for _, p := range pairs {
		hu, okU := g.index[p.U]
		hv, okV := g.index[p.V]
		if !okU || !okV {
			continue
		}
		if w, ok := orig.Weight(p.U, p.V); ok {
			g.setArc(hu, hv, -w)
			negated++
		}
		g.removeArc(hv, hu)
	}
	g.snap.Store(nil)

	return negated
}

// Restore discards every mutation by replacing g's contents with a deep copy
// of the original. The vertex set is rebuilt from the captured catalog, which
// covers every source and target of the restored arcs.
//
// Complexity: O(V + E)
func Restore(g *Graph, orig *Original) error {
	if g == nil || orig == nil {
		return ErrNilGraph
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	orig.g.mu.RLock()
	defer orig.g.mu.RUnlock()

	g.copyFrom(orig.g)

	return nil
}
