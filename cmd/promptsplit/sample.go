package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptsplit/internal/output"
	"github.com/jackzampolin/promptsplit/internal/prompts"
)

func newSampleCmd() *cobra.Command {
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "sample <input> <outdir> <k>",
		Short: "Pick k random prompts into one file (k >= 1)",
		Long: `Draw <k> prompts from <input> at random, without replacement, and write
them to randomly_selected_prompts.txt inside <outdir>. Asking for more prompts
than the file holds reports the shortfall and writes nothing.

Examples:
  promptsplit sample prompts.txt ./out 10
  promptsplit sample prompts.txt ./out 10 --seed 7`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, outDir := arg(args, 0), arg(args, 1)
			sel := selection{input: input, outDir: outDir, mode: output.ModeSample}
			return runOperation(cmd, sel, watchMode, func(ctx context.Context, r *prompts.Runner) (*output.Report, error) {
				k, err := countArg(args, 2)
				if err != nil {
					return nil, err
				}
				return r.RunSample(ctx, input, outDir, k)
			})
		},
	}

	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "re-run whenever the input file changes")
	return cmd
}
