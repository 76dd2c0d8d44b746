// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_collab.go - implementation of Collaborations(artists, tracks, maxCredits).
//
// Contract:
//   - artists ≥ 2, tracks ≥ 1, maxCredits ≥ 2 (else ErrTooFewVertices).
//   - cfg.rng is required (else ErrNeedRandSource).
//   - Every track credits between 1 and maxCredits distinct artists drawn
//     uniformly; every credited pair becomes an edge labelled with the track.
//   - Single-artist tracks add the artist as a vertex only, leaving isolated
//     vertices behind exactly like the raw dataset does before pruning.

package builder

import (
	"fmt"

	"github.com/jbraz05/Spotify-Graph-Explorer/core"
)

const methodCollaborations = "Collaborations"

// Collaborations builds a co-occurrence graph from randomly generated tracks.
// Complexity: O(tracks · maxCredits²).
func Collaborations(artists, tracks, maxCredits int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if artists < 2 || tracks < 1 || maxCredits < 2 {
			return fmt.Errorf("%s: artists=%d tracks=%d maxCredits=%d: %w",
				methodCollaborations, artists, tracks, maxCredits, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodCollaborations, ErrNeedRandSource)
		}
		if maxCredits > artists {
			maxCredits = artists
		}

		for t := 0; t < tracks; t++ {
			credits := 1 + cfg.rng.Intn(maxCredits)
			picked := cfg.rng.Perm(artists)[:credits]
			if credits == 1 {
				g.AddVertex(cfg.idFn(picked[0]))
				continue
			}
			track := cfg.trackFn(t)
			for i := 0; i < credits; i++ {
				for j := i + 1; j < credits; j++ {
					g.AddEdge(cfg.idFn(picked[i]), cfg.idFn(picked[j]), cfg.weight(), core.WithTrack(track))
				}
			}
		}

		return nil
	}
}
