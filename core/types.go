// Package core defines the collaboration Graph store, its options,
// and the sentinel errors shared by every algorithm package.
//
// Vertices are addressed by string IDs at the API boundary and by dense
// integer handles (0..n-1, insertion order) internally. Every vertex owns a
// contiguous out-arc list kept sorted by neighbor ID, so iteration order is
// deterministic without per-query sorting.
//
// All Graph methods are safe for concurrent use: mutations acquire the write
// lock, queries the read lock.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrArcNotFound    - requested directed arc does not exist.
//	ErrNilGraph       - a nil *Graph or *Original was supplied.
package core

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrArcNotFound indicates an operation referenced a non-existent directed arc.
	ErrArcNotFound = errors.New("core: arc not found")

	// ErrNilGraph indicates a nil graph or snapshot was supplied.
	ErrNilGraph = errors.New("core: graph is nil")
)

// UnknownNodeError reports a query that named a vertex absent from the graph.
// Role describes which argument was wrong ("start", "end", ...) and may be empty.
//
// It unwraps to ErrVertexNotFound, so callers can match either the type
// (errors.As) or the sentinel (errors.Is).
type UnknownNodeError struct {
	Role string
	ID   string
}

// Error implements error.
func (e *UnknownNodeError) Error() string {
	if e.Role == "" {
		return fmt.Sprintf("core: unknown node %q", e.ID)
	}

	return fmt.Sprintf("core: unknown %s node %q", e.Role, e.ID)
}

// Unwrap returns ErrVertexNotFound.
func (e *UnknownNodeError) Unwrap() error { return ErrVertexNotFound }

// NewUnknownNodeError builds an *UnknownNodeError for the given role and ID.
func NewUnknownNodeError(role, id string) error {
	return &UnknownNodeError{Role: role, ID: id}
}

// Neighbor is one outgoing arc as seen from its source vertex.
type Neighbor struct {
	// ID is the destination vertex.
	ID string

	// Weight is the arc cost; negative after NegateAndDirect.
	Weight float64
}

// Pair is an unordered vertex pair normalized so that U <= V.
// It keys track labels and names the edges handed to NegateAndDirect.
type Pair struct {
	U string
	V string
}

// MakePair returns the normalized Pair for the endpoints a and b.
func MakePair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{U: a, V: b}
}

// String renders the pair as "U_V", the identifier used by graph exports.
func (p Pair) String() string { return p.U + "_" + p.V }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether AddEdge inserts a single arc (true) or an arc in
// each direction (false). The default is undirected.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithCapacity pre-sizes the vertex catalog for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.names = make([]string, 0, n)
			g.out = make([][]arc, 0, n)
			g.index = make(map[string]int, n)
		}
	}
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	track string
}

// WithTrack labels the unordered pair with the track both artists appear on.
// Later labels replace earlier ones; an empty label is ignored.
func WithTrack(name string) EdgeOption {
	return func(c *edgeConfig) { c.track = name }
}

// arc is a directed half-edge stored in its source's out list.
type arc struct {
	to     int
	weight float64
}

// Graph is the in-memory collaboration graph.
//
// names/index map handles to IDs and back; out[h] holds the arcs leaving h
// sorted ascending by names[to]. tracks is keyed by the normalized Pair and is
// independent of direction. snap caches the last immutable Adjacency built
// from the current state and is cleared by every mutation.
type Graph struct {
	mu sync.RWMutex

	directed bool

	names  []string        // handle → ID
	index  map[string]int  // ID → handle
	out    [][]arc         // handle → sorted out-arcs
	tracks map[Pair]string // unordered pair → track label
	snap   atomic.Pointer[Adjacency]
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index:  make(map[string]int),
		tracks: make(map[Pair]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether AddEdge inserts one arc (true) or two (false).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
