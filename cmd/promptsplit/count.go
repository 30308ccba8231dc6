package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptsplit/internal/output"
	"github.com/jackzampolin/promptsplit/internal/prompts"
	"github.com/jackzampolin/promptsplit/internal/svcctx"
)

// countResult is the structured form of the count command.
type countResult struct {
	Input string `json:"input" yaml:"input"`
	Count int    `json:"count" yaml:"count"`
}

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <input>",
		Short: "Report how many prompts a file holds",
		Example: `  promptsplit count prompts.txt
  promptsplit count prompts.txt -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := arg(args, 0)
			if input == "" {
				svcctx.LoggerFrom(cmd.Context()).Debug("nothing selected")
				return nil
			}

			format, err := output.ParseFormat(svcctx.ConfigFrom(cmd.Context()).Get().Output)
			if err != nil {
				return err
			}
			list, err := prompts.ReadFile(input)
			if err != nil {
				return err
			}

			if format.IsStructured() {
				return output.Encode(cmd.OutOrStdout(), format, countResult{Input: input, Count: len(list)})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "File '%s' contains %d prompts.\n", input, len(list))
			return err
		},
	}
}
