package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Goldbach/internal/config"
	"github.com/MikeSquared-Agency/Goldbach/internal/goldbach"
	"github.com/MikeSquared-Agency/Goldbach/internal/logging"
)

type rootOptions struct {
	configPath string
	format     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "goldbach [N]",
		Short: "Compute the Gaussian-weighted Goldbach partition count D(N)",
		Long: `goldbach sums exp(-(k - N/2)^2 / (2N)) over every k in [2, N-2]
for which both k and N-k are prime.

N is taken from the first argument, then GOLDBACH_N, then compute.n in the
config file, and defaults to 100.

Example:
  goldbach 28
  goldbach --format json 1000`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: text or json")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = opts.format
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging)
	if err != nil {
		return err
	}
	logger = logging.WithRunID(logger)

	n := cfg.Compute.N
	if len(args) == 1 {
		n, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("parse N %q: %w", args[0], err)
		}
	}

	start := time.Now()
	res, err := goldbach.Evaluate(n)
	if err != nil {
		logger.Error("computation rejected", "n", n, "error", err)
		return err
	}
	if logger.Enabled(cmd.Context(), slog.LevelDebug) {
		logPartitions(cmd.Context(), logger, n)
	}
	logger.Info("computed",
		"n", res.N,
		"value", res.Value,
		"pairs", res.Pairs,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return writeResult(cmd.OutOrStdout(), cfg.Output.Format, res)
}

func logPartitions(ctx context.Context, logger *slog.Logger, n int) {
	parts, err := goldbach.Partitions(n)
	if err != nil {
		return
	}
	for _, p := range parts {
		logger.DebugContext(ctx, "partition", "k", p.K, "complement", p.Complement, "weight", p.Weight)
	}
}

func writeResult(w io.Writer, format string, res goldbach.Result) error {
	if format == config.FormatJSON {
		return json.NewEncoder(w).Encode(res)
	}
	_, err := fmt.Fprintf(w, "D(%d) = %v\n", res.N, res.Value)
	return err
}
