package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownAlgorithm indicates an algorithm name outside the supported set.
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

	// ErrEndRequired indicates a shortest-path query without an end node.
	ErrEndRequired = errors.New("engine: end node is required for shortest-path queries")
)

// Algorithm names one of the supported queries.
type Algorithm string

const (
	BFS         Algorithm = "bfs"
	DFS         Algorithm = "dfs"
	Dijkstra    Algorithm = "dijkstra"
	BellmanFord Algorithm = "bellman_ford"
)

// Algorithms lists the supported algorithms in display order.
var Algorithms = []Algorithm{BFS, DFS, Dijkstra, BellmanFord}

// ParseAlgorithm maps a user-supplied name to an Algorithm. Matching is case
// insensitive and "bellman-ford" is accepted for BellmanFord.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "bellman-ford" {
		name = string(BellmanFord)
	}
	for _, a := range Algorithms {
		if string(a) == name {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// ShortestPath reports whether a needs an end node.
func (a Algorithm) ShortestPath() bool {
	return a == Dijkstra || a == BellmanFord
}

// Title is the display name used in Result.Info.
func (a Algorithm) Title() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case Dijkstra:
		return "Dijkstra"
	case BellmanFord:
		return "Bellman-Ford"
	}

	return string(a)
}

// Query is one request. End is ignored by BFS and DFS.
type Query struct {
	Algorithm string `yaml:"algorithm" json:"algorithm"`
	Start     string `yaml:"start" json:"start"`
	End       string `yaml:"end,omitempty" json:"end,omitempty"`
}

// Result is the answer to a Query.
//
// For BFS and DFS, Path is the visit order. For shortest-path algorithms it is
// the route Start→End, empty when there is none or when a negative cycle makes
// it undefined; Distance is nil in both of those cases.
type Result struct {
	Algorithm        Algorithm `json:"algorithm"`
	Start            string    `json:"start"`
	End              string    `json:"end,omitempty"`
	Path             []string  `json:"path"`
	Distance         *float64  `json:"distance,omitempty"`
	Visited          int       `json:"visited"`
	HasNegativeCycle bool      `json:"has_negative_cycle"`
	Cycle            []string  `json:"cycle,omitempty"`
	Info             string    `json:"info"`
}

// outcome labels used by metrics
const (
	outcomeOK            = "ok"
	outcomeNoPath        = "no_path"
	outcomeNegativeCycle = "negative_cycle"
	outcomeError         = "error"
)

func (r *Result) outcome() string {
	switch {
	case r.HasNegativeCycle:
		return outcomeNegativeCycle
	case r.Algorithm.ShortestPath() && r.Distance == nil:
		return outcomeNoPath
	}

	return outcomeOK
}
