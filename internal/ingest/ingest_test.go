package ingest_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayanbhoumick/Plagiarism/internal/ingest"
	"github.com/ayanbhoumick/Plagiarism/internal/services"
	"github.com/ayanbhoumick/Plagiarism/internal/testsupport"
)

func TestLoadFilePlainText(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteText(t, dir, "essay.txt", "Cells divide by mitosis. Then they grow.")

	doc, err := ingest.LoadFile(path, ingest.Options{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if doc.Name != "essay.txt" {
		t.Fatalf("name = %q", doc.Name)
	}
	if doc.Text != "Cells divide by mitosis. Then they grow." {
		t.Fatalf("text = %q", doc.Text)
	}
}

func TestLoadFileDropsInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.md")
	if err := os.WriteFile(path, []byte("caf\xffe au lait"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := ingest.LoadFile(path, ingest.Options{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if doc.Text != "cafe au lait" {
		t.Fatalf("text = %q", doc.Text)
	}
}

func TestLoadFileKeepsReplacementCharacter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "symbols.txt")
	raw := []byte("\xEF\xBB\xBFscore \uFFFD unknown\x80 here")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := ingest.LoadFile(path, ingest.Options{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if doc.Text != "score \uFFFD unknown here" {
		t.Fatalf("text = %q", doc.Text)
	}
}

func TestLoadFileUTF16WithBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "word-export.txt")
	// "Hi!" in UTF-16LE with a byte order mark.
	raw := []byte{0xFF, 0xFE, 'H', 0, 'i', 0, '!', 0}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := ingest.LoadFile(path, ingest.Options{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if doc.Text != "Hi!" {
		t.Fatalf("text = %q", doc.Text)
	}
}

func TestLoadFileHTML(t *testing.T) {
	dir := t.TempDir()
	body := `<html><head><title>ignored</title><style>p{}</style></head>
<body><h1>Essay</h1><p>Rivers carve canyons &amp; valleys.</p><!-- note --><script>x()</script><p>Erosion<br/>continues.</p></body></html>`
	path := testsupport.WriteText(t, dir, "page.html", body)

	doc, err := ingest.LoadFile(path, ingest.Options{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := "Essay\nRivers carve canyons & valleys.\nErosion\ncontinues."
	if doc.Text != want {
		t.Fatalf("text = %q, want %q", doc.Text, want)
	}
}

func TestLoadFileDOCX(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteDOCX(t, dir, "report.docx", "First paragraph of the report.", "Second   paragraph & more.")

	doc, err := ingest.LoadFile(path, ingest.Options{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := "First paragraph of the report.\nSecond paragraph & more."
	if doc.Text != want {
		t.Fatalf("text = %q, want %q", doc.Text, want)
	}
}

func TestLoadFileCorruptDocuments(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"broken.docx", "broken.pdf"} {
		path := testsupport.WriteText(t, dir, name, "not really a binary document")
		_, err := ingest.LoadFile(path, ingest.Options{})
		if !errors.Is(err, services.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestLoadFileRejections(t *testing.T) {
	dir := t.TempDir()
	big := filepath.Join(dir, "big.txt")
	testsupport.WriteFile(t, big, 2048)
	odd := testsupport.WriteText(t, dir, "notes.rtf", "text")
	md := testsupport.WriteText(t, dir, "notes.md", "text")

	tests := []struct {
		name   string
		path   string
		opts   ingest.Options
		marker error
	}{
		{"too large", big, ingest.Options{MaxFileBytes: 1024}, services.ErrValidation},
		{"unsupported extension", odd, ingest.Options{}, services.ErrValidation},
		{"extension not allowed", md, ingest.Options{Extensions: []string{".txt"}}, services.ErrValidation},
		{"missing", filepath.Join(dir, "absent.txt"), ingest.Options{}, services.ErrNotFound},
		{"directory", filepath.Join(dir) + "/", ingest.Options{}, services.ErrValidation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ingest.LoadFile(tc.path, tc.opts)
			if !errors.Is(err, tc.marker) {
				t.Fatalf("expected %v, got %v", tc.marker, err)
			}
		})
	}
}

func TestLoadPathsExpandsDirectories(t *testing.T) {
	root := t.TempDir()
	subs := filepath.Join(root, "submissions")
	testsupport.WriteText(t, subs, "b.txt", "bravo text")
	testsupport.WriteText(t, subs, "a.md", "alpha text")
	testsupport.WriteText(t, subs, "skip.rtf", "ignored")
	testsupport.WriteText(t, subs, ".hidden.txt", "ignored")
	testsupport.WriteText(t, filepath.Join(subs, "nested"), "c.txt", "ignored")
	extra := testsupport.WriteText(t, root, "z.txt", "zulu text")

	docs, err := ingest.LoadPaths(context.Background(), []string{extra, subs}, ingest.Options{})
	if err != nil {
		t.Fatalf("LoadPaths: %v", err)
	}
	var names []string
	for _, d := range docs {
		names = append(names, d.Name)
	}
	if got := strings.Join(names, ","); got != "z.txt,a.md,b.txt" {
		t.Fatalf("names = %s", got)
	}
}

func TestLoadPathsDisambiguatesNames(t *testing.T) {
	root := t.TempDir()
	first := testsupport.WriteText(t, filepath.Join(root, "one"), "essay.txt", "first essay")
	second := testsupport.WriteText(t, filepath.Join(root, "two"), "essay.txt", "second essay")

	docs, err := ingest.LoadPaths(context.Background(), []string{first, second}, ingest.Options{})
	if err != nil {
		t.Fatalf("LoadPaths: %v", err)
	}
	if docs[0].Name != first || docs[1].Name != second {
		t.Fatalf("names = %q, %q", docs[0].Name, docs[1].Name)
	}
}

func TestLoadPathsMissing(t *testing.T) {
	_, err := ingest.LoadPaths(context.Background(), []string{filepath.Join(t.TempDir(), "nope")}, ingest.Options{})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMaxFileBytes(10))
	opts := ingest.OptionsFromConfig(cfg)
	if opts.MaxFileBytes != 10 || len(opts.Extensions) != len(cfg.Ingest.Extensions) {
		t.Fatalf("options = %+v", opts)
	}
	if got := ingest.OptionsFromConfig(nil); got.MaxFileBytes != 0 || got.Extensions != nil {
		t.Fatalf("nil config options = %+v", got)
	}
}

func TestFromText(t *testing.T) {
	doc := ingest.FromText("Doc A", "pasted")
	if doc.Name != "Doc A" || doc.Text != "pasted" {
		t.Fatalf("doc = %+v", doc)
	}
	if len(ingest.SupportedExtensions()) != 6 {
		t.Fatalf("extensions = %v", ingest.SupportedExtensions())
	}
}
