package core_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbraz05/Spotify-Graph-Explorer/core"
)

func TestNegateAndDirect_FlipsOneDirection(t *testing.T) {
	g := newTriangle()
	orig := core.Capture(g)

	n := core.NegateAndDirect(g, orig, []core.Pair{{U: VertexA, V: VertexB}})
	assert.Equal(t, 1, n)

	w, ok := g.Weight(VertexA, VertexB)
	require.True(t, ok)
	assert.Equal(t, -Weight2, w)
	_, ok = g.Weight(VertexB, VertexA)
	assert.False(t, ok, "reverse arc removed")

	// The other edges keep both directions.
	_, ok = g.Weight(VertexC, VertexB)
	assert.True(t, ok)
	assert.True(t, g.HasNegativeWeights())
}

func TestNegateAndDirect_ReadsOriginalNotWorking(t *testing.T) {
	g := newTriangle()
	orig := core.Capture(g)

	pair := []core.Pair{{U: VertexA, V: VertexB}}
	core.NegateAndDirect(g, orig, pair)
	core.NegateAndDirect(g, orig, pair)

	// Negating twice does not flip the sign back.
	w, _ := g.Weight(VertexA, VertexB)
	assert.Equal(t, -Weight2, w)
}

func TestNegateAndDirect_SkipsUnknown(t *testing.T) {
	g := newTriangle()
	orig := core.Capture(g)

	n := core.NegateAndDirect(g, orig, []core.Pair{{U: VertexA, V: VertexX}, {U: VertexX, V: VertexD}})
	assert.Zero(t, n)
	assert.Equal(t, arcSet(newTriangle()), arcSet(g))
	assert.Zero(t, core.NegateAndDirect(nil, orig, nil))
}

func TestNegateAndDirect_MissingOriginalArcStillDropsReverse(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge(VertexB, VertexA, 4)
	orig := core.Capture(g)

	n := core.NegateAndDirect(g, orig, []core.Pair{{U: VertexA, V: VertexB}})
	assert.Zero(t, n, "original has no A→B")
	_, ok := g.Weight(VertexB, VertexA)
	assert.False(t, ok)
}

func TestRestore_ReproducesOriginal(t *testing.T) {
	g := newTriangle()
	want := arcSet(g)
	orig := core.Capture(g)

	core.NegateAndDirect(g, orig, g.Pairs())
	g.AddEdge(VertexC, VertexD, 1)
	require.NotEqual(t, want, arcSet(g))

	require.NoError(t, core.Restore(g, orig))
	assert.Equal(t, want, arcSet(g))
	assert.Equal(t, []string{VertexA, VertexB, VertexC}, g.Vertices())
	name, _ := g.Track(VertexB, VertexC)
	assert.Equal(t, "BC Song", name)
	assert.ErrorIs(t, core.Restore(nil, orig), core.ErrNilGraph)
}

func TestRestore_AfterRandomNegations(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	g := core.NewGraph()
	for i := 0; i < 40; i++ {
		u := string(rune('a' + rng.IntN(12)))
		v := string(rune('a' + rng.IntN(12)))
		if u == v {
			continue
		}
		g.AddEdge(u, v, float64(1+rng.IntN(9)))
	}
	want := arcSet(g)
	orig := core.Capture(g)

	for round := 0; round < 10; round++ {
		pairs := orig.Pairs()
		rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
		core.NegateAndDirect(g, orig, pairs[:3])
	}
	require.NoError(t, core.Restore(g, orig))

	assert.Equal(t, want, arcSet(g))
	assert.Equal(t, orig.VertexCount(), g.VertexCount())
	assert.False(t, g.HasNegativeWeights())
}

func TestCapture_IsImmutable(t *testing.T) {
	g := newTriangle()
	orig := core.Capture(g)

	require.NoError(t, g.SetWeight(VertexA, VertexB, 99))
	w, ok := orig.Weight(VertexA, VertexB)
	require.True(t, ok)
	assert.Equal(t, Weight2, w)
	assert.False(t, orig.Directed())
}
