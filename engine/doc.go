// Package engine is the query facade over a collaboration graph.
//
// An Engine owns one working *core.Graph and the core.Original captured when
// it was created. It validates queries before running them, turns algorithm
// output into a Result (route, distance, negative-cycle flag and a short
// human-readable Info line), orchestrates negate-and-direct and restore, and
// runs batches of queries on a bounded errgroup.
//
// Every query and mutation opens an OpenTelemetry span and feeds Prometheus
// collectors (see WithRegisterer) plus an otel latency histogram.
//
//	eng := engine.New(g, engine.WithLogger(log))
//	res, err := eng.Query(ctx, engine.Query{Algorithm: "dijkstra", Start: "A", End: "C"})
package engine
