package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptsplit/internal/config"
	"github.com/jackzampolin/promptsplit/internal/output"
	"github.com/jackzampolin/promptsplit/internal/prompts"
	"github.com/jackzampolin/promptsplit/internal/svcctx"
	"github.com/jackzampolin/promptsplit/internal/watch"
)

// operation is one redistribution against a freshly built runner.
type operation func(ctx context.Context, r *prompts.Runner) (*output.Report, error)

// errInputIsOutput is returned in watch mode when a run would overwrite its
// own input and so trigger itself again.
var errInputIsOutput = errors.New("input file is overwritten by this run")

// selection is what an operation reads and writes.
type selection struct {
	input  string
	outDir string
	mode   output.Mode
	// numFiles is the split count; zero for other modes.
	numFiles int
}

// arg returns the i-th positional argument, or "" when it was not given.
func arg(args []string, i int) string {
	if i < len(args) {
		return strings.TrimSpace(args[i])
	}
	return ""
}

// countArg parses the i-th positional argument as an integer.
// A missing argument is a missing selection.
func countArg(args []string, i int) (int, error) {
	s := arg(args, i)
	if s == "" {
		return 0, prompts.ErrMissingSelection
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", s, err)
	}
	return n, nil
}

func namesFrom(cfg *config.Config) prompts.Names {
	return prompts.Names{
		SplitPattern: cfg.Files.SplitPattern,
		SampleName:   cfg.Files.SampleName,
	}
}

func newRunner(cfg *config.Config, logger *slog.Logger) (*prompts.Runner, error) {
	mode, err := cfg.Files.Mode()
	if err != nil {
		return nil, err
	}
	return &prompts.Runner{
		Writer: output.NewWriter(mode),
		Rand:   prompts.NewRand(cfg.Seed),
		Names:  namesFrom(cfg),
		Logger: logger,
		Seed:   cfg.Seed,
	}, nil
}

// checkWatchable rejects a selection whose input is one of its own outputs.
func checkWatchable(sel selection, names prompts.Names) error {
	if sel.outDir == "" {
		return nil
	}
	if prompts.IsOutput(sel.input, sel.outDir, names.Outputs(sel.mode, sel.numFiles)) {
		return fmt.Errorf("cannot watch %s: %w", sel.input, errInputIsOutput)
	}
	return nil
}

// watchConfig enables config hot reload and logs each accepted reload.
func watchConfig(mgr *config.Manager, logger *slog.Logger) {
	mgr.OnChange(func(cfg *config.Config) {
		logger.Info("config reloaded",
			"path", mgr.ConfigFileUsed(), "seed", cfg.Seed, "output", cfg.Output,
			"split_pattern", cfg.Files.SplitPattern, "sample_name", cfg.Files.SampleName)
	})
	if mgr.WatchConfig() {
		logger.Debug("config hot reload enabled", "path", mgr.ConfigFileUsed())
	}
}

// runOperation executes op once, or under watch mode on every change to input.
func runOperation(cmd *cobra.Command, sel selection, watchMode bool, op operation) error {
	ctx := cmd.Context()
	logger := svcctx.LoggerFrom(ctx)
	mgr := svcctx.ConfigFrom(ctx)

	once := func(ctx context.Context) error {
		// Re-read config on every run so hot-reloaded values apply in watch mode.
		cfg := mgr.Get()
		if watchMode {
			// Names may change on reload, so check on every run.
			if err := checkWatchable(sel, namesFrom(cfg)); err != nil {
				return err
			}
		}
		format, err := output.ParseFormat(cfg.Output)
		if err != nil {
			return err
		}
		runner, err := newRunner(cfg, logger)
		if err != nil {
			return err
		}

		report, err := op(ctx, runner)
		var over *prompts.OverRequestError
		switch {
		case errors.Is(err, prompts.ErrMissingSelection):
			logger.Debug("nothing selected, no files written")
			return nil
		case errors.As(err, &over):
			fmt.Fprintf(cmd.OutOrStdout(),
				"The number of prompts requested (%d) exceeds the total number of prompts available (%d).\n",
				over.Requested, over.Available)
			return nil
		case err != nil:
			return err
		}

		logger.Info("redistributed prompts",
			"run_id", report.RunID, "mode", report.Mode, "total", report.Total, "written", report.Written(), "files", len(report.Files))
		return output.Render(cmd.OutOrStdout(), format, report)
	}

	if !watchMode || sel.input == "" {
		return once(ctx)
	}

	cfg := mgr.Get()
	delay, err := cfg.Watch.Delay()
	if err != nil {
		return err
	}
	if err := checkWatchable(sel, namesFrom(cfg)); err != nil {
		return err
	}
	watchConfig(mgr, logger)
	return watch.Run(ctx, sel.input, watch.Options{
		SettleDelay:    delay,
		SettleAttempts: cfg.Watch.SettleAttempts,
		Logger:         logger,
	}, once)
}
