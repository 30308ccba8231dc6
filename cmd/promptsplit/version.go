package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptsplit/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Version needs no config; skip loading it.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "promptsplit %s\n", version.GitRelease)
			fmt.Fprintf(out, "  Go:     %s\n", version.GoInfo)
			fmt.Fprintf(out, "  Commit: %s\n", version.GitCommit)
			fmt.Fprintf(out, "  Date:   %s\n", version.GitCommitDate)
		},
	}
}
