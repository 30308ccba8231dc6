package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptsplit/internal/output"
	"github.com/jackzampolin/promptsplit/internal/prompts"
)

func newSplitCmd() *cobra.Command {
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "split <input> <outdir> <n>",
		Short: "Shuffle prompts into n near-equal files (n >= 2)",
		Long: `Shuffle the prompts in <input> and split them into output1.txt through
output<n>.txt inside <outdir>. File sizes differ by at most one prompt; the
first files take the remainder.

Examples:
  promptsplit split prompts.txt ./out 3
  promptsplit split prompts.txt ./out 5 -o json`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, outDir := arg(args, 0), arg(args, 1)
			sel := selection{input: input, outDir: outDir, mode: output.ModeSplit}
			// A bad count is reported by the operation itself.
			sel.numFiles, _ = countArg(args, 2)
			return runOperation(cmd, sel, watchMode, func(ctx context.Context, r *prompts.Runner) (*output.Report, error) {
				n, err := countArg(args, 2)
				if err != nil {
					return nil, err
				}
				return r.RunSplit(ctx, input, outDir, n)
			})
		},
	}

	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "re-run whenever the input file changes")
	return cmd
}
