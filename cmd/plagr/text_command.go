package main

import (
	"github.com/spf13/cobra"

	"github.com/ayanbhoumick/Plagiarism/internal/ingest"
)

func newTextCommand(ctx *commandContext) *cobra.Command {
	flags := &pairFlags{}
	cmd := &cobra.Command{
		Use:   "text TEXT_A TEXT_B",
		Short: "Compare two pasted texts",
		Example: `  plagr text "The mitochondria is the powerhouse of the cell." \
             "Mitochondria are known as the powerhouse of the cell."`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPairAnalysis(cmd, ctx, flags,
				ingest.FromText("Doc A", args[0]),
				ingest.FromText("Doc B", args[1]))
		},
	}
	flags.bind(cmd)
	return cmd
}
