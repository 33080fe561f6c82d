package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/ayanbhoumick/Plagiarism/internal/overlap"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type evidenceJSON struct {
	Matches    []overlap.SentenceMatch `json:"matches"`
	Total      int                     `json:"total"`
	SentencesA int                     `json:"sentences_a"`
	SentencesB int                     `json:"sentences_b"`
	Error      string                  `json:"error,omitempty"`
}

func newEvidenceJSON(report overlap.MatchReport) *evidenceJSON {
	out := &evidenceJSON{
		Matches:    report.Matches,
		Total:      report.Total,
		SentencesA: report.SentencesA,
		SentencesB: report.SentencesB,
	}
	if out.Matches == nil {
		out.Matches = []overlap.SentenceMatch{}
	}
	if report.Err != nil {
		out.Error = report.Err.Error()
	}
	return out
}

type pairJSON struct {
	overlap.ComparisonResult
	Evidence *evidenceJSON `json:"evidence,omitempty"`
}

type compareJSON struct {
	RunID     string     `json:"run_id"`
	Documents []string   `json:"documents"`
	Results   []pairJSON `json:"results"`
}

type inspectJSON struct {
	RunID    string         `json:"run_id"`
	DocA     string         `json:"doc_a"`
	DocB     string         `json:"doc_b"`
	Score    float64        `json:"score"`
	Risk     string         `json:"risk"`
	Evidence *evidenceJSON  `json:"evidence"`
	SpansA   []overlap.Span `json:"spans_a"`
	SpansB   []overlap.Span `json:"spans_b"`
}
