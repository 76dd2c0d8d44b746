// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID StarCenter.
//   - Adds leaves via cfg.idFn for i = 1..n-1 and emits spokes Center → leaf[i].
//     On directed graphs the spokes point outwards only.

package builder

import (
	"fmt"

	"github.com/jbraz05/Spotify-Graph-Explorer/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// StarCenter is the fixed hub ID used by Star.
	StarCenter = "Center"
)

// Star builds a star with center StarCenter and n-1 leaves (n ≥ 2).
// Complexity: O(n) vertices + O(n-1) edges.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		g.AddVertex(StarCenter)
		for i := 1; i < n; i++ {
			g.AddEdge(StarCenter, cfg.idFn(i), cfg.weight())
		}

		return nil
	}
}
