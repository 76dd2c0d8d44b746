// Package core is the graph store behind the collaboration explorer.
//
// A Graph holds artists as vertices and collaborations as weighted arcs.
// Undirected graphs store every collaboration as two independent arcs, so the
// mutation operations can later flip one direction negative and drop the
// other:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 2, core.WithTrack("Song"))
//	orig := core.Capture(g)
//	core.NegateAndDirect(g, orig, []core.Pair{{U: "A", V: "B"}}) // A→B = -2, B→A gone
//	core.Restore(g, orig)                                       // back to A⇄B = 2
//
// Parallel edges keep the minimum weight per direction. Neighbors are always
// returned sorted by ID, which makes every traversal built on top of the
// store deterministic.
//
// Algorithms never read the live maps: Adjacency returns an immutable CSR
// snapshot (cached until the next mutation) that a run can iterate without
// holding any lock.
package core
