package bfs

import (
	"context"
	"fmt"

	"github.com/jbraz05/Spotify-Graph-Explorer/core"
)

// queueItem pairs a vertex handle with its BFS depth.
type queueItem struct {
	h     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj     *core.Adjacency
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	head    int
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or *core.UnknownNodeError for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	adj := g.Adjacency()
	start, ok := adj.Index(startID)
	if !ok {
		return nil, core.NewUnknownNodeError("start", startID)
	}

	n := adj.Len()
	w := &walker{
		adj:     adj,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Start:  startID,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks h visited at depth d, records its parent, and appends it to the queue.
func (w *walker) enqueue(h, d, parent int) {
	w.visited[h] = true
	id := w.adj.Name(h)
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = w.adj.Name(parent)
	}
	w.queue = append(w.queue, queueItem{h: h, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	id := w.adj.Name(item.h)
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	targets, _ := w.adj.Out(item.h)
	for _, nbr := range targets {
		if w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(w.adj.Name(item.h), w.adj.Name(nbr)) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.h)
	}
}
