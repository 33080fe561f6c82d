package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ayanbhoumick/Plagiarism/internal/config"
	"github.com/ayanbhoumick/Plagiarism/internal/overlap"
)

// pairFlags are shared by inspect and text.
type pairFlags struct {
	jsonOut    bool
	highlight  bool
	threshold  float64
	minLength  int
	maxMatches int
}

func (f *pairFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "Output the analysis as JSON")
	cmd.Flags().BoolVar(&f.highlight, "highlight", false, "Print both texts with matched sentences marked")
	cmd.Flags().Float64Var(&f.threshold, "threshold", 0, "Minimum sentence similarity (overrides analysis.match_threshold)")
	cmd.Flags().IntVar(&f.minLength, "min-length", 0, "Sentence length floor in characters (overrides analysis.min_sentence_length)")
	cmd.Flags().IntVar(&f.maxMatches, "max-matches", 0, "Evidence cap, -1 for none (overrides analysis.max_matches)")
}

// matchOptions layers explicitly set flags over the engine's configured options.
func (f *pairFlags) matchOptions(cmd *cobra.Command, base overlap.MatchOptions) (overlap.MatchOptions, error) {
	opts := base
	flags := cmd.Flags()
	if flags.Changed("threshold") {
		if f.threshold <= 0 || f.threshold > 1 {
			return opts, fmt.Errorf("--threshold must be greater than 0 and at most 1")
		}
		opts.Threshold = f.threshold
	}
	if flags.Changed("min-length") {
		switch {
		case f.minLength < 0:
			return opts, fmt.Errorf("--min-length must not be negative")
		case f.minLength == 0:
			opts.MinLength = -1
		default:
			opts.MinLength = f.minLength
		}
	}
	if flags.Changed("max-matches") {
		if f.maxMatches == 0 || f.maxMatches < overlap.Unlimited {
			return opts, fmt.Errorf("--max-matches must be positive or -1")
		}
		opts.MaxResults = f.maxMatches
	}
	return opts, nil
}

// runPairAnalysis scores one pair and renders its sentence evidence.
func runPairAnalysis(cmd *cobra.Command, ctx *commandContext, flags *pairFlags, docA, docB overlap.Document) error {
	base, _, _, err := ctx.engine()
	if err != nil {
		return err
	}
	opts, err := flags.matchOptions(cmd, base.MatchOptions())
	if err != nil {
		return err
	}
	engine, cfg, _, err := ctx.engine(overlap.WithMatchOptions(opts))
	if err != nil {
		return err
	}
	runCtx, runID := newRun(cmd)

	results, err := engine.Compare(runCtx, []overlap.Document{docA, docB})
	if err != nil {
		return err
	}
	result := results[0]
	rep := engine.Evidence(runCtx, result)
	sentencesA := overlap.SentencesFor(rep.Matches, overlap.SideA)
	sentencesB := overlap.SentencesFor(rep.Matches, overlap.SideB)

	if flags.jsonOut {
		return writeJSON(cmd, inspectJSON{
			RunID:    runID,
			DocA:     result.DocA,
			DocB:     result.DocB,
			Score:    result.Score,
			Risk:     string(result.Risk),
			Evidence: newEvidenceJSON(rep),
			SpansA:   overlap.Spans(result.TextA, sentencesA),
			SpansB:   overlap.Spans(result.TextB, sentencesB),
		})
	}

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	writePairHeader(out, result, colorize)
	writeEvidence(out, rep, engine.MatchOptions())

	if flags.highlight {
		open, close := highlightMarkers(cfg, colorize)
		fmt.Fprintln(out)
		writeHighlighted(out, result.DocA, result.TextA, sentencesA, open, close)
		fmt.Fprintln(out)
		writeHighlighted(out, result.DocB, result.TextB, sentencesB, open, close)
	}
	return nil
}

func highlightMarkers(cfg *config.Config, colorize bool) (string, string) {
	if colorize {
		return ansiHighlight, ansiReset
	}
	return cfg.Highlight.Open, cfg.Highlight.Close
}
