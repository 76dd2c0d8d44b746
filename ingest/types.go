// SPDX-License-Identifier: MIT
// Package: ingest
//
// types.go - options, sentinel errors and the load Report.

package ingest

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

var (
	// ErrMissingColumn indicates that a required CSV header is absent.
	ErrMissingColumn = errors.New("ingest: missing column")

	// ErrUnknownWeighting indicates an unsupported Weighting value.
	ErrUnknownWeighting = errors.New("ingest: unknown weighting")

	// ErrUnknownEncoding indicates an unsupported Encoding value.
	ErrUnknownEncoding = errors.New("ingest: unknown encoding")

	// ErrUnknownFormat indicates a dataset format other than csv or yaml.
	ErrUnknownFormat = errors.New("ingest: unknown format")

	// ErrBadEdge indicates a YAML edge with an empty endpoint or NaN weight.
	ErrBadEdge = errors.New("ingest: bad edge")
)

// CSV column names of the Spotify popular-songs dataset.
const (
	ColumnTrack   = "track_name"
	ColumnArtists = "artist(s)_name"
	ColumnStreams = "streams"

	// ArtistSeparator splits the artists cell of a multi-artist track.
	ArtistSeparator = ","
)

// Weighting decides the weight of a collaboration edge.
type Weighting string

const (
	// WeightUnit gives every collaboration weight 1.
	WeightUnit Weighting = "unit"

	// WeightInverseLogStreams gives 1/(1+log10(1+streams)), so collaborations
	// on heavily streamed tracks are shorter hops.
	WeightInverseLogStreams Weighting = "inverse-log-streams"
)

// Encoding is the character encoding of a CSV input.
type Encoding string

const (
	EncodingUTF8   Encoding = "utf8"
	EncodingLatin1 Encoding = "latin1"
)

// Options configures a load.
type Options struct {
	Encoding  Encoding
	Weighting Weighting
	Directed  bool
}

// Option mutates Options.
type Option func(*Options)

// WithEncoding selects the input encoding (default utf8).
func WithEncoding(e Encoding) Option { return func(o *Options) { o.Encoding = e } }

// WithWeighting selects the edge weighting (default unit).
func WithWeighting(w Weighting) Option { return func(o *Options) { o.Weighting = w } }

// WithDirected builds a directed graph instead of the default undirected one.
func WithDirected(directed bool) Option { return func(o *Options) { o.Directed = directed } }

func newOptions(opts []Option) (Options, error) {
	o := Options{Encoding: EncodingUTF8, Weighting: WeightUnit}
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Encoding {
	case EncodingUTF8, EncodingLatin1:
	default:
		return o, fmt.Errorf("%w: %q", ErrUnknownEncoding, o.Encoding)
	}
	switch o.Weighting {
	case WeightUnit, WeightInverseLogStreams:
	default:
		return o, fmt.Errorf("%w: %q", ErrUnknownWeighting, o.Weighting)
	}

	return o, nil
}

// streamWeight maps a stream count to an edge weight.
func streamWeight(streams float64) float64 {
	return 1 / (1 + math.Log10(1+streams))
}

// Report summarizes a load.
type Report struct {
	Rows           int // data rows read
	Skipped        int // rows rejected (malformed streams, no artists)
	Collaborations int // AddEdge calls issued
	SoloTracks     int // rows with a single artist
}

// Fields renders the report for structured logging.
func (r Report) Fields() logrus.Fields {
	return logrus.Fields{
		"rows":           r.Rows,
		"skipped":        r.Skipped,
		"collaborations": r.Collaborations,
		"solo_tracks":    r.SoloTracks,
	}
}

// canceled reports ctx.Err() every checkEvery rows.
func canceled(ctx context.Context, row int) error {
	if row%checkEvery != 0 {
		return nil
	}

	return ctx.Err()
}

const checkEvery = 512
