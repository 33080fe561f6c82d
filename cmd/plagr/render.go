package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/ayanbhoumick/Plagiarism/internal/overlap"
	"github.com/ayanbhoumick/Plagiarism/internal/report"
)

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiRed       = "\x1b[31m"
	ansiGreen     = "\x1b[32m"
	ansiYellow    = "\x1b[33m"
	ansiHighlight = "\x1b[30;43m"
)

const sentenceColumnWidth = 48

func shouldColorize(writer io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func riskColor(level overlap.RiskLevel) string {
	switch level {
	case overlap.RiskCritical:
		return ansiRed
	case overlap.RiskModerate:
		return ansiYellow
	default:
		return ansiGreen
	}
}

func renderRisk(level overlap.RiskLevel, colorize bool) string {
	if !colorize {
		return string(level)
	}
	return riskColor(level) + string(level) + ansiReset
}

func renderResultsTable(results []overlap.ComparisonResult, colorize bool) string {
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("[%d] %s", r.IndexA, r.DocA),
			fmt.Sprintf("[%d] %s", r.IndexB, r.DocB),
			report.Percent(r.Score),
			renderRisk(r.Risk, colorize),
		})
	}
	return renderTable(
		[]string{"#", "Document A", "Document B", "Similarity", "Risk"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
		nil,
	)
}

func riskSummary(results []overlap.ComparisonResult) string {
	counts := map[overlap.RiskLevel]int{}
	for _, r := range results {
		counts[r.Risk]++
	}
	return fmt.Sprintf("%d critical, %d moderate, %d low",
		counts[overlap.RiskCritical], counts[overlap.RiskModerate], counts[overlap.RiskLow])
}

func writePairHeader(out io.Writer, result overlap.ComparisonResult, colorize bool) {
	title := fmt.Sprintf("%s vs %s", result.DocA, result.DocB)
	if colorize {
		title = ansiBold + title + ansiReset
	}
	fmt.Fprintln(out, title)
	fmt.Fprintf(out, "  Similarity: %s\n", report.Percent(result.Score))
	fmt.Fprintf(out, "  Risk:       %s\n", renderRisk(result.Risk, colorize))
}

func writeEvidence(out io.Writer, rep overlap.MatchReport, opts overlap.MatchOptions) {
	if rep.Err != nil {
		fmt.Fprintf(out, "  Sentence evidence unavailable: %v\n", rep.Err)
		return
	}
	if len(rep.Matches) == 0 {
		fmt.Fprintf(out, "  No shared sentences at or above %s similarity (%d vs %d sentences compared)\n",
			report.Percent(opts.Threshold), rep.SentencesA, rep.SentencesB)
		return
	}
	if rep.Truncated() {
		fmt.Fprintf(out, "  Showing %d of %d matching sentences\n", len(rep.Matches), rep.Total)
	} else {
		fmt.Fprintf(out, "  %d matching sentence(s)\n", len(rep.Matches))
	}
	rows := make([][]string, 0, len(rep.Matches))
	for i, m := range rep.Matches {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			report.Percent(m.Similarity),
			m.SentenceA,
			m.SentenceB,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Similarity", "Sentence A", "Sentence B"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft},
		[]int{0, 0, sentenceColumnWidth, sentenceColumnWidth},
	))
}

func writeHighlighted(out io.Writer, name, text string, sentences []string, open, close string) {
	fmt.Fprintf(out, "--- %s ---\n", name)
	fmt.Fprintln(out, strings.TrimRight(overlap.Highlight(text, sentences, open, close), "\n"))
}
