package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jbraz05/Spotify-Graph-Explorer/config"
	"github.com/jbraz05/Spotify-Graph-Explorer/engine"
	"github.com/jbraz05/Spotify-Graph-Explorer/ingest"
	"github.com/jbraz05/Spotify-Graph-Explorer/logging"
)

// app is the state shared by all subcommands once the root pre-run has loaded
// configuration.
type app struct {
	configPath string
	dataset    string
	verbose    bool

	cfg *config.Config
	log *logrus.Logger
}

func newRootCommand(ctx context.Context) *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:          "spotigraph",
		Short:        "Explore the Spotify artist collaboration graph",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.SetContext(ctx)
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVarP(&a.dataset, "dataset", "d", "", "dataset path, overrides dataset.path")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newQueryCommand(a),
		newStatsCommand(a),
		newExportCommand(a),
		newBatchCommand(a),
		newGenerateCommand(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dataset != "" {
		cfg.Dataset.Path = a.dataset
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}

	log, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	for _, w := range cfg.Validate() {
		log.Warn(w)
	}

	a.cfg = cfg
	a.log = log
	cmd.SetContext(logging.WithLogger(cmd.Context(), log))

	return nil
}

// loadEngine ingests the configured dataset, prunes it when asked to, and
// wraps it in an Engine.
func (a *app) loadEngine(ctx context.Context) (*engine.Engine, error) {
	ds := a.cfg.Dataset
	if ds.Path == "" {
		return nil, errors.New("no dataset: pass --dataset or set dataset.path")
	}

	g, rep, err := ingest.LoadFile(ctx, ds.Path, ds.Format,
		ingest.WithEncoding(ingest.Encoding(ds.Encoding)),
		ingest.WithWeighting(ingest.Weighting(ds.Weighting)),
		ingest.WithDirected(ds.Directed),
	)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", ds.Path, err)
	}

	fields := rep.Fields()
	fields["vertices"] = g.VertexCount()
	if ds.Prune {
		fields["pruned"] = g.Prune()
		fields["vertices"] = g.VertexCount()
	}
	a.log.WithFields(fields).Info("graph ready")

	return engine.New(g,
		engine.WithLogger(a.log),
		engine.WithBatchWorkers(a.cfg.Engine.BatchWorkers),
	), nil
}

func formatPath(path []string) string {
	if len(path) == 0 {
		return "(empty)"
	}

	return strings.Join(path, " -> ")
}
