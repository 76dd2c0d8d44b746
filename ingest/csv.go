// SPDX-License-Identifier: MIT
// Package: ingest
//
// csv.go - Spotify popular-songs CSV loader.
//
// Every row is one track. Each unordered pair of distinct credited artists
// becomes a collaboration edge labelled with the track name; core.AddEdge
// keeps the minimum weight when two artists share several tracks.

package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"

	"github.com/jbraz05/Spotify-Graph-Explorer/core"
	"github.com/jbraz05/Spotify-Graph-Explorer/logging"
)

// byte-order marks as they appear after UTF-8 and Latin-1 decoding
var boms = []string{"\ufeff", "\u00ef\u00bb\u00bf"}

// LoadCSV builds a graph from a Spotify CSV export.
//
// Required columns: track_name and artist(s)_name; streams is required only
// for WeightInverseLogStreams. Rows whose streams cell is not a non-negative
// number are skipped with a warning in that mode. Rows with a single artist add
// the artist as an isolated vertex (Prune removes it later).
func LoadCSV(ctx context.Context, r io.Reader, opts ...Option) (*core.Graph, Report, error) {
	var rep Report
	o, err := newOptions(opts)
	if err != nil {
		return nil, rep, err
	}
	if o.Encoding == EncodingLatin1 {
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, rep, fmt.Errorf("ingest: reading header: %w", err)
	}
	cols := indexColumns(header)

	trackCol, ok := cols[ColumnTrack]
	if !ok {
		return nil, rep, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnTrack)
	}
	artistsCol, ok := cols[ColumnArtists]
	if !ok {
		return nil, rep, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnArtists)
	}
	streamsCol, hasStreams := cols[ColumnStreams]
	if o.Weighting == WeightInverseLogStreams && !hasStreams {
		return nil, rep, fmt.Errorf("%w: %s (needed by %s)", ErrMissingColumn, ColumnStreams, o.Weighting)
	}

	log := logging.FromContext(ctx)
	g := core.NewGraph(core.WithDirected(o.Directed))
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, rep, fmt.Errorf("ingest: %w", err)
		}
		rep.Rows++
		if err := canceled(ctx, rep.Rows); err != nil {
			return nil, rep, err
		}

		artists := splitArtists(cell(rec, artistsCol))
		if len(artists) == 0 {
			rep.Skipped++
			continue
		}

		weight := 1.0
		if o.Weighting == WeightInverseLogStreams {
			raw := cell(rec, streamsCol)
			streams, perr := strconv.ParseFloat(raw, 64)
			if perr != nil || streams < 0 {
				log.WithFields(logrus.Fields{"row": rep.Rows, "streams": raw}).Warn("skipping row with malformed streams")
				rep.Skipped++
				continue
			}
			weight = streamWeight(streams)
		}

		if len(artists) == 1 {
			g.AddVertex(artists[0])
			rep.SoloTracks++
			continue
		}

		track := cell(rec, trackCol)
		for i := 0; i < len(artists); i++ {
			for j := i + 1; j < len(artists); j++ {
				g.AddEdge(artists[i], artists[j], weight, core.WithTrack(track))
				rep.Collaborations++
			}
		}
	}

	log.WithFields(rep.Fields()).Info("csv dataset loaded")

	return g, rep, nil
}

// indexColumns maps trimmed header names to their position.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			for _, bom := range boms {
				h = strings.TrimPrefix(h, bom)
			}
		}
		cols[strings.TrimSpace(h)] = i
	}

	return cols
}

func cell(rec []string, col int) string {
	if col >= len(rec) {
		return ""
	}

	return strings.TrimSpace(rec[col])
}

// splitArtists splits a credits cell, trimming names and dropping blanks and
// repeats while keeping first-seen order.
func splitArtists(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ArtistSeparator)
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(p)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}
