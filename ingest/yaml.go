// SPDX-License-Identifier: MIT
// Package: ingest
//
// yaml.go - hand-written edge-list fixtures.
//
// Format:
//
//	directed: false          # optional, overrides WithDirected
//	vertices: [Solo Artist]  # optional isolated vertices
//	edges:
//	  - {from: A, to: B, weight: 2, track: "Song"}
//	  - {from: B, to: C}       # weight defaults to 1

package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/jbraz05/Spotify-Graph-Explorer/core"
	"github.com/jbraz05/Spotify-Graph-Explorer/logging"
)

type edgeList struct {
	Directed *bool      `yaml:"directed,omitempty"`
	Vertices []string   `yaml:"vertices,omitempty"`
	Edges    []edgeSpec `yaml:"edges"`
}

type edgeSpec struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight,omitempty"`
	Track  string   `yaml:"track,omitempty"`
}

// LoadYAML builds a graph from a YAML edge list. Unknown keys are rejected.
// Only WithDirected is honored from opts, and only when the document does not
// set directed itself.
func LoadYAML(ctx context.Context, r io.Reader, opts ...Option) (*core.Graph, Report, error) {
	var rep Report
	o, err := newOptions(opts)
	if err != nil {
		return nil, rep, err
	}

	var doc edgeList
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, rep, fmt.Errorf("ingest: decoding yaml: %w", err)
	}

	directed := o.Directed
	if doc.Directed != nil {
		directed = *doc.Directed
	}

	g := core.NewGraph(core.WithDirected(directed), core.WithCapacity(len(doc.Vertices)+2*len(doc.Edges)))
	for _, v := range doc.Vertices {
		g.AddVertex(v)
	}
	for i, e := range doc.Edges {
		rep.Rows++
		if err := canceled(ctx, rep.Rows); err != nil {
			return nil, rep, err
		}
		if e.From == "" || e.To == "" {
			return nil, rep, fmt.Errorf("%w: edges[%d] needs from and to", ErrBadEdge, i)
		}
		w := 1.0
		if e.Weight != nil {
			w = *e.Weight
		}
		if math.IsNaN(w) {
			return nil, rep, fmt.Errorf("%w: edges[%d] weight is NaN", ErrBadEdge, i)
		}
		g.AddEdge(e.From, e.To, w, core.WithTrack(e.Track))
		rep.Collaborations++
	}

	logging.FromContext(ctx).WithFields(rep.Fields()).Debug("yaml edge list loaded")

	return g, rep, nil
}

// WriteYAML writes g in the format LoadYAML reads. Undirected graphs emit
// each pair once, using the weight stored in the lexically smaller direction.
// Vertices without outgoing arcs are listed under vertices.
func WriteYAML(w io.Writer, g *core.Graph) error {
	directed := g.Directed()
	doc := edgeList{Directed: &directed, Vertices: []string{}, Edges: []edgeSpec{}}
	seen := make(map[core.Pair]struct{})
	for _, u := range g.Vertices() {
		nbrs := g.Neighbors(u)
		if len(nbrs) == 0 {
			doc.Vertices = append(doc.Vertices, u)
			continue
		}
		for _, nb := range nbrs {
			if !directed {
				p := core.MakePair(u, nb.ID)
				if _, dup := seen[p]; dup {
					continue
				}
				seen[p] = struct{}{}
			}
			weight := nb.Weight
			track, _ := g.Track(u, nb.ID)
			doc.Edges = append(doc.Edges, edgeSpec{From: u, To: nb.ID, Weight: &weight, Track: track})
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("ingest: encoding yaml: %w", err)
	}

	return enc.Close()
}
