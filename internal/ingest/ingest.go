package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ayanbhoumick/Plagiarism/internal/config"
	"github.com/ayanbhoumick/Plagiarism/internal/overlap"
	"github.com/ayanbhoumick/Plagiarism/internal/services"
)

const component = "ingest"

// Options limits which files are loaded.
type Options struct {
	// Extensions lists accepted lowercase extensions with leading dots.
	// Empty accepts every supported format.
	Extensions []string
	// MaxFileBytes rejects larger files. Zero disables the limit.
	MaxFileBytes int64
}

// OptionsFromConfig reads the [ingest] section.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{}
	}
	return Options{
		Extensions:   slices.Clone(cfg.Ingest.Extensions),
		MaxFileBytes: cfg.Ingest.MaxFileBytes,
	}
}

func (o Options) allows(ext string) bool {
	if _, ok := extractors[ext]; !ok {
		return false
	}
	return len(o.Extensions) == 0 || slices.Contains(o.Extensions, ext)
}

type extractor func(path string, raw []byte) (string, error)

var extractors = map[string]extractor{
	".txt":  func(_ string, raw []byte) (string, error) { return decodeText(raw) },
	".md":   func(_ string, raw []byte) (string, error) { return decodeText(raw) },
	".html": parseHTML,
	".htm":  parseHTML,
	".pdf":  parsePDF,
	".docx": parseDOCX,
}

// SupportedExtensions lists every format LoadFile understands.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(extractors))
	for ext := range extractors {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// FromText wraps pasted text as a document.
func FromText(name, text string) overlap.Document {
	return overlap.Document{Name: name, Text: text}
}

// LoadFile reads one file. The document is named after the file's base name.
func LoadFile(path string, opts Options) (overlap.Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !opts.allows(ext) {
		return overlap.Document{}, services.Wrap(services.ErrValidation, component, "load",
			fmt.Sprintf("unsupported file type %q for %s", ext, path), nil)
	}

	info, err := os.Stat(path)
	if err != nil {
		return overlap.Document{}, statError(path, err)
	}
	if info.IsDir() {
		return overlap.Document{}, services.Wrap(services.ErrValidation, component, "load",
			fmt.Sprintf("%s is a directory", path), nil)
	}
	if opts.MaxFileBytes > 0 && info.Size() > opts.MaxFileBytes {
		return overlap.Document{}, services.Wrap(services.ErrValidation, component, "load",
			fmt.Sprintf("%s is %d bytes, limit is %d", path, info.Size(), opts.MaxFileBytes), nil)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return overlap.Document{}, statError(path, err)
	}
	text, err := extractors[ext](path, raw)
	if err != nil {
		return overlap.Document{}, services.Wrap(services.ErrValidation, component, "extract", path, err)
	}
	return overlap.Document{Name: filepath.Base(path), Text: text}, nil
}

// LoadPaths loads files and directories in argument order. Directory entries
// with unsupported extensions are skipped; explicitly named files with
// unsupported extensions are an error. Documents whose base names collide
// keep the path they were loaded from as their name.
func LoadPaths(ctx context.Context, paths []string, opts Options) ([]overlap.Document, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, statError(path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, statError(path, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			if !opts.allows(strings.ToLower(filepath.Ext(entry.Name()))) {
				continue
			}
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}

	docs := make([]overlap.Document, 0, len(files))
	names := make(map[string]int, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := LoadFile(file, opts)
		if err != nil {
			return nil, err
		}
		if prev, ok := names[doc.Name]; ok {
			docs[prev].Name = filepath.Clean(files[prev])
			doc.Name = filepath.Clean(file)
		}
		names[filepath.Base(file)] = len(docs)
		docs = append(docs, doc)
	}
	return docs, nil
}

func statError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return services.Wrap(services.ErrNotFound, component, "stat", path, err)
	}
	return services.Wrap(services.ErrValidation, component, "read", path, err)
}
