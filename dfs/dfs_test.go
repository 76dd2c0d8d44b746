package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbraz05/Spotify-Graph-Explorer/builder"
	"github.com/jbraz05/Spotify-Graph-Explorer/core"
	"github.com/jbraz05/Spotify-Graph-Explorer/dfs"
)

// buildChain creates a directed chain graph of length n: N0→N1→…→N(n-1).
func buildChain(n int) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n-1; i++ {
		g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1), 1)
	}

	return g
}

// buildBinaryTree creates a complete binary tree of depth d (nodes = 2^d-1).
// IDs: "T-01","T-02",… zero-padded so ID order matches heap order.
func buildBinaryTree(depth int) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	maxD := (1 << depth) - 1
	for i := 2; i <= maxD; i++ {
		g.AddEdge(fmt.Sprintf("T-%02d", i/2), fmt.Sprintf("T-%02d", i), 1)
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	res, err := dfs.DFS(g, "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDFS_SingleVertex_NoEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddVertex("X")

	res, err := dfs.DFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, res.Order)
	assert.Equal(t, []string{"X"}, res.PostOrder)
	assert.True(t, res.Visited["X"])
	_, hasParent := res.Parent["X"]
	assert.False(t, hasParent, "start vertex should have no parent")
}

func TestDFS_TriangleOrder(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 2)
	g.AddEdge("B", "C", 3)
	g.AddEdge("A", "C", 10)

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	assert.Equal(t, []string{"C", "B", "A"}, res.PostOrder)
	assert.Equal(t, "B", res.Parent["C"], "C is discovered through B before A→C is examined")
	assert.Equal(t, 2, res.Depth["C"])
}

func TestDFS_GoesDeepBeforeWide(t *testing.T) {
	g := buildBinaryTree(3)

	res, err := dfs.DFS(g, "T-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"T-01", "T-02", "T-04", "T-05", "T-03", "T-06", "T-07"}, res.Order)
	assert.Equal(t, []string{"T-04", "T-05", "T-02", "T-06", "T-07", "T-03", "T-01"}, res.PostOrder)
}

func TestDFS_LongChainDoesNotRecurse(t *testing.T) {
	const n = 200000
	g := buildChain(n)

	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)
	assert.Len(t, res.Order, n)
	assert.Equal(t, n-1, res.Depth["N"+strconv.Itoa(n-1)])
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(5)

	res, err := dfs.DFS(g, "N0", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1", "N2"}, res.Order)

	res, err = dfs.DFS(g, "N0", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"N0"}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := buildBinaryTree(3)

	res, err := dfs.DFS(g, "T-01", dfs.WithFilterNeighbor(func(id string) bool { return id != "T-02" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"T-01", "T-03", "T-06", "T-07"}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("b", "c", 1)
	g.AddEdge("x", "a", 1)
	g.AddVertex("z")

	res, err := dfs.DFS(g, "x", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "a", "b", "c", "z"}, res.Order)

	res, err = dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "x", "z"}, res.Order)
}

func TestDFS_HooksAndCancel(t *testing.T) {
	g := buildChain(4)
	var exits []string
	res, err := dfs.DFS(g, "N0", dfs.WithOnExit(func(id string) error {
		exits = append(exits, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, res.PostOrder, exits)

	boom := errors.New("boom")
	_, err = dfs.DFS(g, "N0", dfs.WithOnVisit(func(id string) error {
		if id == "N2" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	_, err = dfs.DFS(g, "N0", dfs.WithOnExit(func(string) error { return boom }))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, "N0", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestDFS_MatchesBFSReachability checks DFS reaches exactly the vertices
// that a plain reachability sweep over Neighbors does.
func TestDFS_MatchesBFSReachability(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)},
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(25, 0.08))
		require.NoError(t, err)

		want := map[string]bool{"0": true}
		frontier := []string{"0"}
		for len(frontier) > 0 {
			u := frontier[0]
			frontier = frontier[1:]
			for _, nb := range g.Neighbors(u) {
				if !want[nb.ID] {
					want[nb.ID] = true
					frontier = append(frontier, nb.ID)
				}
			}
		}

		res, err := dfs.DFS(g, "0")
		require.NoError(t, err)
		assert.Equal(t, want, res.Visited, "seed %d", seed)
		assert.Len(t, res.Order, len(want))
	}
}
