package dfs

import (
	"fmt"
	"sort"

	"github.com/jbraz05/Spotify-Graph-Explorer/core"
)

// frame is one entry of the explicit DFS stack: the vertex, its depth, and
// the index of the next out-arc to examine.
type frame struct {
	h     int
	depth int
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	adj     *core.Adjacency
	opts    DFSOptions
	visited []bool
	stack   []frame
	res     *DFSResult
}

// DFS performs depth‑first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from startID.
// Returns DFSResult or an error if aborted by context or hook; the partial
// result is returned alongside such errors.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	adj := g.Adjacency()
	start, ok := adj.Index(startID)
	if !dopts.FullTraversal && !ok {
		return nil, core.NewUnknownNodeError("start", startID)
	}

	n := adj.Len()
	w := &dfsWalker{
		adj:     adj,
		opts:    dopts,
		visited: make([]bool, n),
		res: &DFSResult{
			Order:     make([]string, 0, n),
			PostOrder: make([]string, 0, n),
			Depth:     make(map[string]int, n),
			Parent:    make(map[string]string, n),
			Visited:   make(map[string]bool, n),
		},
	}

	if !dopts.FullTraversal {
		return w.res, w.traverse(start)
	}

	// Forest mode: the named start (if any) goes first, then the rest by ID.
	roots := make([]int, 0, n)
	if ok {
		roots = append(roots, start)
	}
	byID := make([]int, n)
	for h := range byID {
		byID[h] = h
	}
	sort.Slice(byID, func(i, j int) bool { return adj.Name(byID[i]) < adj.Name(byID[j]) })
	roots = append(roots, byID...)
	for _, h := range roots {
		if w.visited[h] {
			continue
		}
		if err := w.traverse(h); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse runs one DFS tree rooted at root.
func (w *dfsWalker) traverse(root int) error {
	if err := w.enter(root, 0, -1); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		targets, _ := w.adj.Out(top.h)
		canDescend := w.opts.MaxDepth < 0 || top.depth < w.opts.MaxDepth
		if canDescend && top.next < len(targets) {
			nbr := targets[top.next]
			top.next++
			if w.visited[nbr] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(w.adj.Name(nbr)) {
				w.res.SkippedNeighbors++
				continue
			}
			// enter appends to the stack, so top must not be used past this point.
			if err := w.enter(nbr, top.depth+1, top.h); err != nil {
				return err
			}
			continue
		}

		if err := w.exit(top.h); err != nil {
			return err
		}
		w.stack = w.stack[:len(w.stack)-1]
	}

	return nil
}

// enter marks h discovered, records its tree data, runs OnVisit and pushes its frame.
func (w *dfsWalker) enter(h, depth, parent int) error {
	id := w.adj.Name(h)
	w.visited[h] = true
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if parent >= 0 {
		w.res.Parent[id] = w.adj.Name(parent)
	}
	w.res.Order = append(w.res.Order, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}
	w.stack = append(w.stack, frame{h: h, depth: depth})

	return nil
}

// exit runs OnExit and records the finish order.
func (w *dfsWalker) exit(h int) error {
	id := w.adj.Name(h)
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.PostOrder = append(w.res.PostOrder, id)

	return nil
}
