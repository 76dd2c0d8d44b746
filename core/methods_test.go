package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbraz05/Spotify-Graph-Explorer/core"
)

func TestAddEdge_UndirectedMirrors(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(VertexA, VertexB, Weight2)

	w, ok := g.Weight(VertexA, VertexB)
	require.True(t, ok)
	assert.Equal(t, Weight2, w)
	w, ok = g.Weight(VertexB, VertexA)
	require.True(t, ok)
	assert.Equal(t, Weight2, w)
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.Directed())
}

func TestAddEdge_DirectedSingleArc(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge(VertexA, VertexB, Weight2)

	_, ok := g.Weight(VertexB, VertexA)
	assert.False(t, ok)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.Degree(VertexA))
	assert.Equal(t, 0, g.Degree(VertexB))
	assert.True(t, g.HasVertex(VertexB), "target is registered even without out-arcs")
}

func TestAddEdge_KeepsMinimumWeight(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(VertexA, VertexB, 5)
	g.AddEdge(VertexA, VertexB, Weight3)
	g.AddEdge(VertexB, VertexA, 7)

	w, _ := g.Weight(VertexA, VertexB)
	assert.Equal(t, Weight3, w)
	w, _ = g.Weight(VertexB, VertexA)
	assert.Equal(t, Weight3, w)
	assert.Equal(t, 2, g.EdgeCount(), "parallel edges collapse")
}

func TestAddEdge_MinimumIsPerDirection(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(VertexA, VertexB, 5)
	require.NoError(t, g.SetWeight(VertexB, VertexA, 9))

	// Lowering to 7 only improves B→A; A→B stays at 5.
	g.AddEdge(VertexA, VertexB, 7)

	w, _ := g.Weight(VertexA, VertexB)
	assert.Equal(t, 5.0, w)
	w, _ = g.Weight(VertexB, VertexA)
	assert.Equal(t, 7.0, w)
}

func TestAddEdge_TrackLastWriteWins(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(VertexA, VertexB, 1, core.WithTrack("First"))
	g.AddEdge(VertexB, VertexA, 4, core.WithTrack("Second"))
	g.AddEdge(VertexA, VertexB, 9, core.WithTrack(""))

	name, ok := g.Track(VertexA, VertexB)
	require.True(t, ok)
	assert.Equal(t, "Second", name)
	name, _ = g.Track(VertexB, VertexA)
	assert.Equal(t, "Second", name, "label is keyed by the unordered pair")

	_, ok = g.Track(VertexA, VertexC)
	assert.False(t, ok)
}

func TestNeighbors_SortedAndEmpty(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge(VertexA, VertexD, 1)
	g.AddEdge(VertexA, VertexB, 1)
	g.AddEdge(VertexA, VertexC, 1)
	g.AddVertex(VertexX)

	assert.Equal(t, []string{VertexB, VertexC, VertexD}, neighborIDs(g, VertexA))
	assert.Empty(t, g.Neighbors(VertexX))
	assert.Empty(t, g.Neighbors("missing"))
	assert.Equal(t, 0, g.Degree("missing"))
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := newTriangle()
	nbs := g.Neighbors(VertexA)
	nbs[0].Weight = -100

	w, _ := g.Weight(VertexA, VertexB)
	assert.Equal(t, Weight2, w)
}

func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("zeta", "alpha", 1)
	g.AddVertex("mid")
	g.AddVertex("mid")

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, g.Vertices())
}

func TestSetWeight_UnknownNode(t *testing.T) {
	g := newTriangle()

	err := g.SetWeight(VertexA, "missing", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrVertexNotFound))

	var une *core.UnknownNodeError
	require.ErrorAs(t, err, &une)
	assert.Equal(t, "missing", une.ID)
	assert.Equal(t, "target", une.Role)
}

func TestRemoveArc(t *testing.T) {
	g := newTriangle()

	assert.True(t, g.RemoveArc(VertexB, VertexA))
	assert.False(t, g.RemoveArc(VertexB, VertexA))
	assert.False(t, g.RemoveArc("missing", VertexA))

	_, ok := g.Weight(VertexA, VertexB)
	assert.True(t, ok, "reverse arc untouched")
	assert.Equal(t, []string{VertexC}, neighborIDs(g, VertexB))
}

func TestPairs_Unique(t *testing.T) {
	g := newTriangle()
	g.RemoveArc(VertexB, VertexA)

	assert.Equal(t, []core.Pair{
		{U: VertexA, V: VertexB},
		{U: VertexA, V: VertexC},
		{U: VertexB, V: VertexC},
	}, g.Pairs())
	assert.Equal(t, "A_B", core.MakePair(VertexB, VertexA).String())
}

func TestHasNegativeWeights(t *testing.T) {
	g := newTriangle()
	assert.False(t, g.HasNegativeWeights())

	require.NoError(t, g.SetWeight(VertexA, VertexB, -1))
	assert.True(t, g.HasNegativeWeights())
}

func TestStats(t *testing.T) {
	g := newTriangle()
	st := g.Stats()

	assert.Equal(t, 3, st.Vertices)
	assert.Equal(t, 3, st.Edges)
	assert.InDelta(t, 2.0, st.AvgDegree, 1e-9)
	assert.Equal(t, map[string]int{VertexA: 2, VertexB: 2, VertexC: 2}, st.Degrees)
	assert.Zero(t, st.NegativeArcs)

	d := core.NewGraph(core.WithDirected(true))
	d.AddEdge(VertexA, VertexB, 1)
	d.AddEdge(VertexB, VertexC, -1)
	dst := d.Stats()
	assert.Equal(t, 2, dst.Edges)
	assert.Equal(t, 1, dst.NegativeArcs)

	empty := core.NewGraph().Stats()
	assert.Zero(t, empty.AvgDegree)
}

func TestPrune_SelfLoopsAndIsolated(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(VertexA, VertexB, 1)
	g.AddEdge(VertexC, VertexC, 1, core.WithTrack("Solo"))
	g.AddVertex(VertexX)
	g.AddEdge(VertexD, VertexD, 1)
	g.AddEdge(VertexD, VertexA, 2)

	removed := g.Prune()

	assert.Equal(t, 2, removed, "C (loop only) and X (isolated)")
	assert.Equal(t, []string{VertexA, VertexB, VertexD}, g.Vertices())
	_, ok := g.Weight(VertexD, VertexD)
	assert.False(t, ok)
	_, ok = g.Track(VertexC, VertexC)
	assert.False(t, ok)

	// Surviving arcs still resolve after handles are renumbered.
	w, ok := g.Weight(VertexD, VertexA)
	require.True(t, ok)
	assert.Equal(t, 2.0, w)
	assert.Equal(t, []string{VertexB, VertexD}, neighborIDs(g, VertexA))
	assert.Equal(t, 0, g.Prune())
}

func TestPrune_KeepsDirectedSinks(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge(VertexA, VertexB, 1)

	assert.Equal(t, 0, g.Prune())
	assert.True(t, g.HasVertex(VertexB))
}

func TestClone_Independent(t *testing.T) {
	g := newTriangle()
	c := g.Clone()

	require.NoError(t, c.SetWeight(VertexA, VertexB, -7))
	c.AddEdge(VertexC, VertexD, 1)

	assert.Equal(t, arcSet(newTriangle()), arcSet(g))
	assert.True(t, c.HasVertex(VertexD))
	assert.False(t, g.HasVertex(VertexD))
	name, _ := c.Track(VertexA, VertexB)
	assert.Equal(t, "AB Song", name)
}

func TestAdjacency_Snapshot(t *testing.T) {
	g := newTriangle()
	a := g.Adjacency()

	assert.Same(t, a, g.Adjacency(), "cached until the next mutation")
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 6, a.ArcCount())
	assert.False(t, a.Directed())

	ha, ok := a.Index(VertexA)
	require.True(t, ok)
	targets, weights := a.Out(ha)
	names := make([]string, len(targets))
	for i, h := range targets {
		names[i] = a.Name(h)
	}
	assert.Equal(t, []string{VertexB, VertexC}, names)
	assert.Equal(t, []float64{Weight2, Weight10}, weights)

	g.AddEdge(VertexA, VertexD, 1)
	b := g.Adjacency()
	assert.NotSame(t, a, b)
	assert.Equal(t, 3, a.Len(), "old snapshot is unaffected")
	assert.Equal(t, 4, b.Len())

	_, ok = a.Index(VertexD)
	assert.False(t, ok)
}
