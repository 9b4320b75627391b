package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bogodb/ringopt/internal/handlers"
	"github.com/bogodb/ringopt/internal/storage"
	"github.com/bogodb/ringopt/internal/validator"
)

var errConstraints = errors.New("graph does not meet constraints")

func newVerifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [GRAPH]",
		Short: "Check a graph file against the configured limits",
		Long: `verify loads a graph (the configured output path by default) and prints a
JSON report. It exits non-zero when a constraint is violated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			path := cfg.Paths.Output
			if len(args) == 1 {
				path = args[0]
			}

			graph, err := storage.LoadGraph(logger, path)
			if err != nil {
				return err
			}

			violation := validator.Check(graph, cfg.Limits)
			if violation != nil {
				logger.Warn(violation.Message, zap.String("rule", string(violation.Rule)))
			}
			report := handlers.VerifyResponse{
				Valid:     violation == nil,
				Violation: violation,
				Stats:     graph.Stats(cfg.Limits.MaxTotalEdges, cfg.Limits.MaxEdgesPerNode),
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
			if violation != nil {
				return errConstraints
			}
			return nil
		},
	}
}
