package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jbraz05/Spotify-Graph-Explorer/core"
)

// TestConcurrentAddAndRead runs writers and snapshot readers side by side.
// Run with -race; the assertions only check the final state.
func TestConcurrentAddAndRead(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup

	for w := 0; w < NWriters; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < NRounds; i++ {
				g.AddEdge(fmt.Sprintf("w%d", w), fmt.Sprintf("n%d", i), float64(i))
			}
		}(w)
	}
	for r := 0; r < NReaders; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < NRounds; i++ {
				a := g.Adjacency()
				for h := 0; h < a.Len(); h++ {
					a.Out(h)
				}
				_ = g.Neighbors("w0")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, NWriters+NRounds, g.VertexCount())
	assert.Equal(t, NWriters*NRounds, g.Stats().Edges)
	assert.Equal(t, g.VertexCount(), g.Adjacency().Len())
}

// TestConcurrentNegateRestore interleaves mutation batches with readers.
func TestConcurrentNegateRestore(t *testing.T) {
	g := newTriangle()
	orig := core.Capture(g)
	want := arcSet(g)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < NRounds; i++ {
			core.NegateAndDirect(g, orig, []core.Pair{{U: VertexA, V: VertexB}})
			_ = core.Restore(g, orig)
		}
	}()
	for r := 0; r < NReaders; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < NRounds; i++ {
				a := g.Adjacency()
				_ = a.ArcCount()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, want, arcSet(g))
}
