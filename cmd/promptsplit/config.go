package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptsplit/internal/config"
	"github.com/jackzampolin/promptsplit/internal/output"
	"github.com/jackzampolin/promptsplit/internal/svcctx"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage promptsplit configuration",
	}
	configCmd.AddCommand(newConfigInitCmd(), newConfigShowCmd())
	return configCmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Long: `Write the default configuration to [path], or to config.yaml in the
promptsplit home directory when no path is given. An existing file is left
alone unless --force is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := svcctx.HomeFrom(cmd.Context())
			path := arg(args, 0)
			if path == "" {
				if err := h.EnsureExists(); err != nil {
					return err
				}
				path = h.ConfigPath()
				if h.ConfigExists() && !force {
					return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
				}
			}

			if err := config.WriteDefault(path); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config in the home directory")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := svcctx.ConfigFrom(cmd.Context()).Get()
			format := output.FormatYAML
			if cfg.Output == string(output.FormatJSON) {
				format = output.FormatJSON
			}
			return output.Encode(cmd.OutOrStdout(), format, cfg)
		},
	}
}
