// Package spotigraph explores the graph of artists who share tracks on
// Spotify: two artists are linked when they are credited on the same song.
//
// 🚀 What is in the box?
//
//	An in-memory, thread-safe collaboration graph plus the tools around it:
//		• Core store: minimum-weight edges, optional direction, track labels
//		• Traversals: BFS, DFS
//		• Shortest paths: Dijkstra, Bellman-Ford with negative-cycle detection
//		• Mutation: negate-and-direct selected edges, restore the original
//		• Ingestion: Spotify CSV export, YAML edge lists
//		• Query engine: validation, batches, tracing and metrics
//
// Packages:
//
//	core/        - Graph, Original snapshot, NegateAndDirect / Restore, Prune, Stats
//	route/       - predecessor-map path reconstruction
//	bfs/, dfs/   - traversals over the CSR adjacency snapshot
//	dijkstra/    - Dijkstra with early stop at the target
//	bellmanford/ - Bellman-Ford with cycle extraction
//	builder/     - deterministic fixture graphs for tests and demos
//	ingest/      - dataset loaders
//	engine/      - query facade used by the CLI
//	config/, logging/ - viper settings and logrus setup
//	cmd/spotigraph - the command-line tool
//
// Quick ASCII example:
//
//	    A──2──B
//	     \    │
//	     10   3
//	       \  │
//	         C
//
//	Dijkstra(A, C) walks A → B → C with distance 5. Negating A─B turns it
//	into the one-way arc A → B (-2), and Bellman-Ford then reports distance 1.
//
//	go install github.com/jbraz05/Spotify-Graph-Explorer/cmd/spotigraph@latest
package spotigraph
