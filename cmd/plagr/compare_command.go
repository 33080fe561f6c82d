package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ayanbhoumick/Plagiarism/internal/ingest"
	"github.com/ayanbhoumick/Plagiarism/internal/logging"
	"github.com/ayanbhoumick/Plagiarism/internal/overlap"
	"github.com/ayanbhoumick/Plagiarism/internal/report"
	"github.com/ayanbhoumick/Plagiarism/internal/services"
)

const csvDefaultTarget = "default"

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var csvPath string
	var evidence bool
	var pairFlag string
	var workers int

	cmd := &cobra.Command{
		Use:   "compare FILE|DIR...",
		Short: "Score every pair of submissions",
		Long: "Load every file (directories are expanded one level) and score each unordered pair.\n" +
			"Sentence evidence is computed for all pairs with --evidence, or for a single pair with --pair i:j\n" +
			"where i and j are the document indexes shown in the table.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOut && csvPath == "-" {
				return errors.New("--json and --csv=- both write to stdout; choose one")
			}
			engine, cfg, logger, err := ctx.engine(overlap.WithWorkers(workers))
			if err != nil {
				return err
			}
			runCtx, runID := newRun(cmd)
			logger = logging.WithContext(runCtx, logger)

			docs, err := ingest.LoadPaths(runCtx, args, ingest.OptionsFromConfig(cfg))
			if err != nil {
				return err
			}
			logger.Info("documents loaded", logging.Int("documents", len(docs)))

			results, err := engine.Compare(runCtx, docs)
			if err != nil {
				return err
			}

			selected := make(map[int]bool)
			if pairFlag != "" {
				slot, err := parsePair(pairFlag, len(docs))
				if err != nil {
					return err
				}
				selected[slot] = true
			} else if evidence {
				for slot := range results {
					selected[slot] = true
				}
			}
			reports := make(map[int]overlap.MatchReport, len(selected))
			for slot := range selected {
				reports[slot] = engine.Evidence(runCtx, results[slot])
			}

			if csvPath == "-" {
				return report.WriteCSV(cmd.OutOrStdout(), results)
			}
			var savedTo string
			if csvPath != "" {
				target := csvPath
				if target == csvDefaultTarget {
					target = filepath.Join(cfg.Paths.ReportDir, report.DefaultName(runID))
				}
				if err := report.Save(runCtx, target, results); err != nil {
					return services.Wrap(services.ErrInternal, "cli", "save report", target, err)
				}
				logger.Info("report saved", logging.String("path", target))
				savedTo = target
			}

			if jsonOut {
				payload := compareJSON{
					RunID:     runID,
					Documents: make([]string, len(docs)),
					Results:   make([]pairJSON, len(results)),
				}
				for i, d := range docs {
					payload.Documents[i] = d.Name
				}
				for slot, r := range results {
					payload.Results[slot] = pairJSON{ComparisonResult: r}
					if rep, ok := reports[slot]; ok {
						payload.Results[slot].Evidence = newEvidenceJSON(rep)
					}
				}
				return writeJSON(cmd, payload)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderResultsTable(results, colorize))
			fmt.Fprintf(out, "%d documents, %d pairs (%s)\n", len(docs), len(results), riskSummary(results))
			matchOpts := engine.MatchOptions()
			for slot, r := range results {
				rep, ok := reports[slot]
				if !ok {
					continue
				}
				fmt.Fprintln(out)
				writePairHeader(out, r, colorize)
				writeEvidence(out, rep, matchOpts)
			}
			if savedTo != "" {
				fmt.Fprintf(out, "Report written to %s\n", savedTo)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output results as JSON")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write a CSV report (--csv=PATH, --csv=- for stdout, bare --csv for paths.report_dir)")
	cmd.Flags().Lookup("csv").NoOptDefVal = csvDefaultTarget
	cmd.Flags().BoolVar(&evidence, "evidence", false, "Include sentence evidence for every pair")
	cmd.Flags().StringVar(&pairFlag, "pair", "", "Include sentence evidence for one pair of document indexes (i:j)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent pair scoring (overrides analysis.workers)")
	return cmd
}

// parsePair converts "i:j" document indexes into the result slot of that
// pair. The indexes may be given in either order.
func parsePair(value string, documents int) (int, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok {
		return 0, services.Wrap(services.ErrValidation, "cli", "parse pair", fmt.Sprintf("%q is not in i:j form", value), nil)
	}
	i, errI := strconv.Atoi(strings.TrimSpace(left))
	j, errJ := strconv.Atoi(strings.TrimSpace(right))
	if errI != nil || errJ != nil {
		return 0, services.Wrap(services.ErrValidation, "cli", "parse pair", fmt.Sprintf("%q has non-numeric indexes", value), nil)
	}
	if i > j {
		i, j = j, i
	}
	if i == j || i < 0 || j >= documents {
		return 0, services.Wrap(services.ErrValidation, "cli", "parse pair",
			fmt.Sprintf("%q must name two different documents between 0 and %d", value, documents-1), nil)
	}
	return pairSlot(i, j, documents), nil
}

// pairSlot returns the position of pair (i, j), i < j, in Compare's output.
func pairSlot(i, j, n int) int {
	return i*(2*n-i-1)/2 + (j - i - 1)
}
