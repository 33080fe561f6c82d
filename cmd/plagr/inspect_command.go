package main

import (
	"github.com/spf13/cobra"

	"github.com/ayanbhoumick/Plagiarism/internal/ingest"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	flags := &pairFlags{}
	cmd := &cobra.Command{
		Use:   "inspect FILE_A FILE_B",
		Short: "Show sentence-level evidence for one pair of files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			opts := ingest.OptionsFromConfig(cfg)
			docA, err := ingest.LoadFile(args[0], opts)
			if err != nil {
				return err
			}
			docB, err := ingest.LoadFile(args[1], opts)
			if err != nil {
				return err
			}
			return runPairAnalysis(cmd, ctx, flags, docA, docB)
		},
	}
	flags.bind(cmd)
	return cmd
}
