package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofrs/flock"

	"github.com/ayanbhoumick/Plagiarism/internal/overlap"
)

// Header is the first CSV row.
var Header = []string{"doc_a", "doc_b", "score", "risk", "text_a", "text_b"}

const lockRetryDelay = 50 * time.Millisecond

// WriteCSV writes one row per result in the order given.
func WriteCSV(w io.Writer, results []overlap.ComparisonResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.DocA,
			r.DocB,
			strconv.FormatFloat(r.Score, 'f', 6, 64),
			string(r.Risk),
			r.TextA,
			r.TextB,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s/%s: %w", r.DocA, r.DocB, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// Save writes the report to path, replacing any existing file. The write
// holds path+".lock" and lands through a temp file rename.
func Save(ctx context.Context, path string, results []overlap.ComparisonResult) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, results); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("report: create directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("report: acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("report: %s is locked by another run", path)
	}
	defer func() { _ = lock.Unlock() }()

	tmp := filepath.Join(dir, fmt.Sprintf(".plagr-report-%d.tmp", time.Now().UnixNano()))
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("report: write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("report: rename temp file: %w", err)
	}
	return nil
}

// DefaultName returns the report file name for a run.
func DefaultName(runID string) string {
	if len(runID) > 8 {
		runID = runID[:8]
	}
	if runID == "" {
		runID = "latest"
	}
	return "plagr-report-" + runID + ".csv"
}

// Percent formats a score in [0,1] as a percentage with two decimals.
func Percent(score float64) string {
	return fmt.Sprintf("%.2f%%", score*100)
}
