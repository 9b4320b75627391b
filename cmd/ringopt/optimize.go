package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bogodb/ringopt/internal/builder"
	"github.com/bogodb/ringopt/internal/config"
	"github.com/bogodb/ringopt/internal/storage"
)

func newOptimizeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "optimize",
		Short: "Run the load, analyze, build, validate and save pipeline (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd, opts)
		},
	}
}

func runOptimize(cmd *cobra.Command, opts *options) error {
	cfg, logger, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := optimize(logger, cfg); err != nil {
		logger.Error("optimization failed", zap.Error(err))
		return fmt.Errorf("optimization failed: %w", err)
	}
	return nil
}

// optimize runs the pipeline end to end. A graph that fails validation is
// still saved.
func optimize(logger *zap.Logger, cfg *config.Config) error {
	logger.Info("loading initial graph", zap.String("path", cfg.Paths.Graph))
	initial, err := storage.LoadGraph(logger, cfg.Paths.Graph)
	if err != nil {
		return err
	}

	logger.Info("loading query results", zap.String("path", cfg.Paths.Results))
	results, err := storage.LoadResults(logger, cfg.Paths.Results)
	if err != nil {
		return err
	}

	graph, err := builder.OptimizeGraph(logger, initial, results, cfg.Limits, cfg.Layout)
	if err != nil {
		return err
	}

	logger.Info("saving optimized graph", zap.String("path", cfg.Paths.Output))
	if err := storage.SaveGraph(logger, graph, cfg.Paths.Output); err != nil {
		return err
	}

	logger.Info("done, optimized graph has been saved")
	return nil
}
