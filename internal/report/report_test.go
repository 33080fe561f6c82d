package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"

	"github.com/ayanbhoumick/Plagiarism/internal/overlap"
)

func sampleResults() []overlap.ComparisonResult {
	return []overlap.ComparisonResult{
		{DocA: "alice.txt", DocB: "bob.txt", IndexA: 0, IndexB: 1, Score: 0.8123456789, Risk: overlap.RiskCritical, TextA: "Line one,\nwith comma.", TextB: `He said "hi".`},
		{DocA: "alice.txt", DocB: "carol.txt", IndexA: 0, IndexB: 2, Score: 0, Risk: overlap.RiskLow, TextA: "a", TextB: "c"},
	}
}

func TestWriteCSVRoundTripsFields(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleResults()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus two rows, got %d", len(rows))
	}
	if got := rows[0]; len(got) != len(Header) || got[0] != "doc_a" || got[5] != "text_b" {
		t.Fatalf("header = %v", got)
	}
	first := rows[1]
	if first[2] != "0.812346" || first[3] != "CRITICAL" {
		t.Fatalf("score/risk = %s/%s", first[2], first[3])
	}
	if first[4] != "Line one,\nwith comma." || first[5] != `He said "hi".` {
		t.Fatalf("texts not preserved: %q %q", first[4], first[5])
	}
	if rows[2][2] != "0.000000" || rows[2][3] != "LOW" {
		t.Fatalf("second row = %v", rows[2])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if buf.String() != "doc_a,doc_b,score,risk,text_a,text_b\n" {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestSaveReplacesFileAndReleasesLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.csv")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Save(context.Background(), path, sampleResults()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("doc_a,doc_b")) {
		t.Fatalf("report not replaced: %q", data)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
	relock := flock.New(path + ".lock")
	if ok, err := relock.TryLock(); err != nil || !ok {
		t.Fatalf("lock not released: %v %v", ok, err)
	}
	_ = relock.Unlock()
}

func TestSaveRespectsExistingLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	held := flock.New(path + ".lock")
	if ok, err := held.TryLock(); err != nil || !ok {
		t.Fatalf("TryLock: %v %v", ok, err)
	}
	defer held.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Save(ctx, path, sampleResults()); err == nil {
		t.Fatal("expected error while lock is held")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("report should not exist: %v", err)
	}
}

func TestDefaultName(t *testing.T) {
	tests := map[string]string{
		"3f2a9c1e-1111-2222-3333-444455556666": "plagr-report-3f2a9c1e.csv",
		"abc":                                  "plagr-report-abc.csv",
		"":                                     "plagr-report-latest.csv",
	}
	for id, want := range tests {
		if got := DefaultName(id); got != want {
			t.Fatalf("DefaultName(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(0.8123); got != "81.23%" {
		t.Fatalf("Percent = %q", got)
	}
	if got := Percent(1); got != "100.00%" {
		t.Fatalf("Percent = %q", got)
	}
}
