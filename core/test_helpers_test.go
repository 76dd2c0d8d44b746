// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for the core tests.

package core_test

import (
	"github.com/jbraz05/Spotify-Graph-Explorer/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests.
const (
	Weight2  = 2.0
	Weight3  = 3.0
	Weight10 = 10.0
)

// Concurrency sizes.
const (
	NWriters = 20
	NReaders = 50
	NRounds  = 100
)

// newTriangle builds the undirected A-B(2), B-C(3), A-C(10) fixture.
func newTriangle() *core.Graph {
	g := core.NewGraph()
	g.AddEdge(VertexA, VertexB, Weight2, core.WithTrack("AB Song"))
	g.AddEdge(VertexB, VertexC, Weight3, core.WithTrack("BC Song"))
	g.AddEdge(VertexA, VertexC, Weight10)

	return g
}

// neighborIDs projects Neighbors onto their IDs.
func neighborIDs(g *core.Graph, id string) []string {
	nbs := g.Neighbors(id)
	ids := make([]string, len(nbs))
	for i, nb := range nbs {
		ids[i] = nb.ID
	}

	return ids
}

// arcSet captures every arc of g as "u->v" → weight for exact comparisons.
func arcSet(g *core.Graph) map[string]float64 {
	res := make(map[string]float64)
	for _, u := range g.Vertices() {
		for _, nb := range g.Neighbors(u) {
			res[u+"->"+nb.ID] = nb.Weight
		}
	}

	return res
}
