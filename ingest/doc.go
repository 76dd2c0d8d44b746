// Package ingest turns datasets into a *core.Graph.
//
// Two inputs are understood:
//
//   - The Spotify "popular songs" CSV, one row per track. Artists credited on
//     the same track are linked pairwise; the edge carries the track name.
//     The public export is Latin-1 encoded, hence WithEncoding(EncodingLatin1).
//   - A small YAML edge-list format used for fixtures and experiments.
//
// Loaders never prune; callers run core.Graph.Prune afterwards.
// A logger carried by the context (see package logging) receives the load
// summary and warnings about skipped rows.
package ingest
