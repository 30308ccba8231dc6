package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptsplit/internal/config"
	"github.com/jackzampolin/promptsplit/internal/home"
	"github.com/jackzampolin/promptsplit/internal/svcctx"
	"github.com/jackzampolin/promptsplit/version"
)

type rootOptions struct {
	cfgFile      string
	homeDir      string
	outputFormat string
	logLevel     string
	seed         int64
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "promptsplit",
		Short: "Shuffle, split and sample blank-line separated prompt files",
		Long: `promptsplit redistributes a text file of prompts separated by blank lines.

Modes:
  - halves: shuffle and split into output1.txt and output2.txt
  - split:  shuffle and split into N files, earlier files take the remainder
  - sample: pick K prompts at random into randomly_selected_prompts.txt

Output files are overwritten. Prompts are rejoined with a blank line and no
trailing separator.`,
		Version:       version.GitRelease,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupServices(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(
		&opts.cfgFile, "config", "", "config file (default: ./config.yaml or ~/.promptsplit/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&opts.homeDir, "home", "", "promptsplit home directory (default: ~/.promptsplit)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&opts.outputFormat, "output", "o", "text", "output format: text, yaml or json",
	)
	rootCmd.PersistentFlags().StringVar(
		&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error",
	)
	rootCmd.PersistentFlags().Int64Var(
		&opts.seed, "seed", 0, "fix the random seed for reproducible runs (0 = random)",
	)

	rootCmd.AddCommand(
		newHalvesCmd(),
		newSplitCmd(),
		newSampleCmd(),
		newCountCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// setupServices loads configuration and attaches services to the command context.
func setupServices(cmd *cobra.Command, opts *rootOptions) error {
	h, err := home.New(opts.homeDir)
	if err != nil {
		return err
	}

	searchPaths := []string{"."}
	if h.Exists() {
		searchPaths = append(searchPaths, h.Path())
	}
	mgr, err := config.NewManager(config.Options{
		ConfigFile:  opts.cfgFile,
		SearchPaths: searchPaths,
		Flags:       cmd.Flags(),
	})
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), mgr.Get().LogLevel)
	if used := mgr.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config", "path", used)
	}

	ctx := svcctx.WithServices(cmd.Context(), &svcctx.Services{
		Config: mgr,
		Logger: logger,
		Home:   h,
	})
	cmd.SetContext(ctx)
	return nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
}
