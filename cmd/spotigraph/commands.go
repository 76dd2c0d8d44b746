package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jbraz05/Spotify-Graph-Explorer/builder"
	"github.com/jbraz05/Spotify-Graph-Explorer/engine"
	"github.com/jbraz05/Spotify-Graph-Explorer/ingest"
)

// mutationFlags lets a command negate random collaborations before it runs.
type mutationFlags struct {
	negate int
	seed   uint64
}

func (m *mutationFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&m.negate, "negate", 0, "negate and direct N random collaborations first")
	cmd.Flags().Uint64Var(&m.seed, "seed", 1, "seed for --negate")
}

func (m *mutationFlags) apply(ctx context.Context, a *app, eng *engine.Engine) {
	if m.negate <= 0 {
		return
	}
	rng := rand.New(rand.NewPCG(m.seed, m.seed))
	pairs, negated := eng.NegateRandom(ctx, rng, m.negate)
	for _, p := range pairs {
		a.log.WithField("pair", p.String()).Debug("negated")
	}
	a.log.Infof("%d edges negated and made one-way", negated)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func newQueryCommand(a *app) *cobra.Command {
	var (
		q       engine.Query
		mut     mutationFlags
		jsonOut bool
	)
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run bfs, dfs, dijkstra or bellman_ford from --start",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			eng, err := a.loadEngine(ctx)
			if err != nil {
				return err
			}
			mut.apply(ctx, a, eng)

			res, err := eng.Query(ctx, q)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Info)
			fmt.Fprintln(cmd.OutOrStdout(), formatPath(res.Path))
			if res.HasNegativeCycle {
				fmt.Fprintln(cmd.OutOrStdout(), "cycle:", formatPath(res.Cycle))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&q.Algorithm, "algo", "a", "", "algorithm: bfs, dfs, dijkstra, bellman_ford")
	cmd.Flags().StringVarP(&q.Start, "start", "s", "", "start artist")
	cmd.Flags().StringVarP(&q.End, "end", "e", "", "end artist (shortest-path algorithms)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")
	mut.register(cmd)
	_ = cmd.MarkFlagRequired("algo")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newStatsCommand(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print vertex, edge and degree statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := a.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			st := eng.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices:      %d\n", st.Vertices)
			fmt.Fprintf(out, "edges:         %d\n", st.Edges)
			fmt.Fprintf(out, "avg degree:    %.2f\n", st.AvgDegree)
			fmt.Fprintf(out, "negative arcs: %d\n", st.NegativeArcs)

			ids := make([]string, 0, len(st.Degrees))
			for id := range st.Degrees {
				ids = append(ids, id)
			}
			sort.Slice(ids, func(i, j int) bool {
				di, dj := st.Degrees[ids[i]], st.Degrees[ids[j]]
				if di != dj {
					return di > dj
				}
				return ids[i] < ids[j]
			})
			n := min(max(top, 0), len(ids))
			for _, id := range ids[:n] {
				fmt.Fprintf(out, "  %-30s %d\n", id, st.Degrees[id])
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "list the N best-connected artists")

	return cmd
}

func newExportCommand(a *app) *cobra.Command {
	var (
		outPath string
		mut     mutationFlags
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write nodes and edges as JSON for a graph renderer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			eng, err := a.loadEngine(ctx)
			if err != nil {
				return err
			}
			mut.apply(ctx, a, eng)

			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			return writeJSON(w, eng.Export())
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	mut.register(cmd)

	return cmd
}

func newBatchCommand(a *app) *cobra.Command {
	var mut mutationFlags
	cmd := &cobra.Command{
		Use:   "batch QUERIES.yaml",
		Short: "Run a YAML list of queries concurrently and print JSON results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			var qs []engine.Query
			if err := yaml.NewDecoder(f).Decode(&qs); err != nil {
				return fmt.Errorf("decoding %s: %w", args[0], err)
			}

			eng, err := a.loadEngine(ctx)
			if err != nil {
				return err
			}
			mut.apply(ctx, a, eng)

			results, err := eng.Batch(ctx, qs)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), results)
		},
	}
	mut.register(cmd)

	return cmd
}

func newGenerateCommand(a *app) *cobra.Command {
	var (
		artists, tracks, credits, maxWeight int
		seed                                int64
		outPath                             string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic collaboration graph as a YAML edge list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bopts := []builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithIDScheme(builder.ArtistIDFn),
			}
			if maxWeight > 1 {
				bopts = append(bopts, builder.WithWeightFn(builder.IntegerWeightFn(1, maxWeight)))
			}
			g, err := builder.BuildGraph(nil, bopts, builder.Collaborations(artists, tracks, credits))
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"vertices": g.VertexCount(),
				"pairs":    len(g.Pairs()),
			}).Info("graph generated")

			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			return ingest.WriteYAML(w, g)
		},
	}
	cmd.Flags().IntVar(&artists, "artists", 50, "number of artists")
	cmd.Flags().IntVar(&tracks, "tracks", 120, "number of tracks")
	cmd.Flags().IntVar(&credits, "max-credits", 3, "most artists credited on one track")
	cmd.Flags().IntVar(&maxWeight, "max-weight", 1, "draw integer weights in [1, N]; 1 keeps unit weights")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	return cmd
}
