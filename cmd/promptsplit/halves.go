package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptsplit/internal/output"
	"github.com/jackzampolin/promptsplit/internal/prompts"
)

func newHalvesCmd() *cobra.Command {
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "halves <input> <outdir>",
		Short: "Shuffle prompts into two near-equal files",
		Long: `Shuffle the prompts in <input> and split them into output1.txt and
output2.txt inside <outdir>. When the count is odd, output2.txt gets the
extra prompt.

Examples:
  promptsplit halves prompts.txt ./out
  promptsplit halves prompts.txt ./out --seed 42
  promptsplit halves prompts.txt ./out --watch`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, outDir := arg(args, 0), arg(args, 1)
			sel := selection{input: input, outDir: outDir, mode: output.ModeHalves}
			return runOperation(cmd, sel, watchMode, func(ctx context.Context, r *prompts.Runner) (*output.Report, error) {
				return r.RunHalves(ctx, input, outDir)
			})
		},
	}

	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "re-run whenever the input file changes")
	return cmd
}
