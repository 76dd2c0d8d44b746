package dijkstra_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/jbraz05/Spotify-Graph-Explorer/builder"
	"github.com/jbraz05/Spotify-Graph-Explorer/core"
	"github.com/jbraz05/Spotify-Graph-Explorer/dijkstra"
	"github.com/jbraz05/Spotify-Graph-Explorer/route"
)

// triangle builds the undirected A-B(2), B-C(3), A-C(10) fixture.
func triangle() *core.Graph {
	g := core.NewGraph()
	g.AddEdge("A", "B", 2)
	g.AddEdge("B", "C", 3)
	g.AddEdge("A", "C", 10)

	return g
}

// toGonum mirrors every arc of g (whose IDs are decimal indices) into a gonum graph.
func toGonum(t *testing.T, g *core.Graph) *simple.WeightedDirectedGraph {
	t.Helper()
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for _, id := range g.Vertices() {
		wg.AddNode(simple.Node(mustAtoi(t, id)))
	}
	for _, u := range g.Vertices() {
		for _, nb := range g.Neighbors(u) {
			wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(mustAtoi(t, u)), simple.Node(mustAtoi(t, nb.ID)), nb.Weight))
		}
	}

	return wg
}

func mustAtoi(t *testing.T, s string) int64 {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err)

	return int64(n)
}

func TestDijkstra_Validation(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(triangle())
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(triangle(), dijkstra.Source("Z"))
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, _, err = dijkstra.Dijkstra(triangle(), dijkstra.Source("A"), dijkstra.WithTarget("Z"))
	var une *core.UnknownNodeError
	require.ErrorAs(t, err, &une)
	assert.Equal(t, "target", une.Role)

	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
}

func TestDijkstra_Triangle(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(), dijkstra.Source("A"))
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"A": 0, "B": 2, "C": 5}, dist)
	assert.Equal(t, map[string]string{"B": "A", "C": "B"}, prev)
	assert.Equal(t, []string{"A", "B", "C"}, route.Reconstruct(prev, "A", "C"))
}

func TestDijkstra_UnreachableIsInf(t *testing.T) {
	g := triangle()
	g.AddEdge("X", "Y", 1)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist["X"], 1))
	assert.True(t, math.IsInf(dist["Y"], 1))
	_, ok := prev["X"]
	assert.False(t, ok)
	assert.Empty(t, route.Reconstruct(prev, "A", "Y"))
}

func TestDijkstra_SourceEqualsTarget(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(), dijkstra.Source("B"), dijkstra.WithTarget("B"))
	require.NoError(t, err)
	assert.Zero(t, dist["B"])
	assert.Equal(t, []string{"B"}, route.Reconstruct(prev, "B", "B"))
}

func TestDijkstra_EarlyStopAtTarget(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)},
		builder.Path(6))
	require.NoError(t, err)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithTarget("C"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist["C"])
	assert.Equal(t, []string{"A", "B", "C"}, route.Reconstruct(prev, "A", "C"))
	// D was never reached because C was settled before being relaxed.
	assert.True(t, math.IsInf(dist["D"], 1))
}

func TestDijkstra_TieBreakByID(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("S", "b", 1)
	g.AddEdge("S", "a", 1)
	g.AddEdge("a", "T", 1)
	g.AddEdge("b", "T", 1)

	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("S"))
	require.NoError(t, err)
	assert.Equal(t, "a", prev["T"], "a is settled first and claims T")
}

func TestDijkstra_Caps(t *testing.T) {
	g := triangle()

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist["B"])
	assert.True(t, math.IsInf(dist["C"], 1))

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(11))
	require.NoError(t, err)
	assert.Equal(t, 5.0, dist["C"])

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(3))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist["B"])
	assert.True(t, math.IsInf(dist["C"], 1), "B-C (3) and A-C (10) are impassable")
}

// TestDijkstra_NegativeArcsTerminate documents the known limitation: the run
// finishes on negative arcs (even on a negative cycle) and stays consistent,
// but distances are not guaranteed optimal.
func TestDijkstra_NegativeArcsTerminate(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "A", -5)
	g.AddEdge("A", "C", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	for v, p := range prev {
		w, ok := g.Weight(p, v)
		require.True(t, ok)
		assert.Equal(t, dist[p]+w, dist[v], "dist/prev consistent at %s", v)
	}
	assert.Equal(t, []string{"A", "B", "C"}, route.Reconstruct(prev, "A", "C"))
}

// TestDijkstra_MatchesGonum cross-checks distances with gonum on random
// non-negative graphs.
func TestDijkstra_MatchesGonum(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(seed%2 == 1)},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.IntegerWeightFn(0, 20))},
			builder.RandomSparse(30, 0.1))
		require.NoError(t, err)

		dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("0"))
		require.NoError(t, err)
		oracle := path.DijkstraFrom(simple.Node(0), toGonum(t, g))

		for _, id := range g.Vertices() {
			want := oracle.WeightTo(mustAtoi(t, id))
			assert.Equal(t, want, dist[id], "seed %d vertex %s", seed, id)

			p := route.Reconstruct(prev, "0", id)
			if math.IsInf(want, 1) {
				assert.Empty(t, p)
				continue
			}
			require.NotEmpty(t, p)
			sum := 0.0
			for i := 1; i < len(p); i++ {
				w, _ := g.Weight(p[i-1], p[i])
				sum += w
			}
			assert.Equal(t, want, sum, "seed %d path to %s", seed, id)
		}
	}
}
