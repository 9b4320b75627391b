package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bogodb/ringopt/internal/config"
	"github.com/bogodb/ringopt/internal/logging"
)

type options struct {
	configPath string
	graph      string
	results    string
	output     string
	logLevel   string
	logFormat  string
	addr       string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "ringopt",
		Short: "Generate a ring-architecture graph tuned for a random-walk query workload",
		Long: `ringopt reads an initial graph and the results of a prior query run,
reports which targets were queried most, and writes a replacement graph laid
out as an inner ring, a medium ring and overflow redirects to node 0.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	flags.StringVar(&opts.graph, "graph", "", "Initial graph JSON file")
	flags.StringVar(&opts.results, "results", "", "Query results JSON file")
	flags.StringVarP(&opts.output, "output", "o", "", "Where to write the optimized graph")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: console or json")

	root.AddCommand(newOptimizeCmd(opts), newVerifyCmd(opts), newServeCmd(opts))
	return root
}

// setup loads the config, applies any flags that were set and builds the logger.
func setup(cmd *cobra.Command, opts *options) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	override := func(name string, dst *string, val string) {
		if flags.Changed(name) {
			*dst = val
		}
	}
	override("graph", &cfg.Paths.Graph, opts.graph)
	override("results", &cfg.Paths.Results, opts.results)
	override("output", &cfg.Paths.Output, opts.output)
	override("log-level", &cfg.Log.Level, opts.logLevel)
	override("log-format", &cfg.Log.Format, opts.logFormat)
	override("addr", &cfg.Server.Addr, opts.addr)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
