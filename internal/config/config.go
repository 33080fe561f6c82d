package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	// LogDir receives plagr.log when set. Empty disables file logging.
	LogDir string `toml:"log_dir"`
	// ReportDir is where CSV reports land when --csv is given without a path.
	ReportDir string `toml:"report_dir"`
}

// Analysis contains sentence matching and scheduling settings.
type Analysis struct {
	// MatchThreshold is the minimum sentence cosine similarity kept as evidence.
	MatchThreshold float64 `toml:"match_threshold"`
	// MinSentenceLength is the exclusive character floor for sentences.
	MinSentenceLength int `toml:"min_sentence_length"`
	// MaxMatches caps evidence per pair. -1 disables the cap.
	MaxMatches int `toml:"max_matches"`
	// Workers bounds concurrent pair scoring. 1 scores sequentially.
	Workers int `toml:"workers"`
}

// Risk contains the score boundaries between risk tiers. A score above
// CriticalAbove is CRITICAL, above ModerateAbove is MODERATE, otherwise LOW.
type Risk struct {
	ModerateAbove float64 `toml:"moderate_above"`
	CriticalAbove float64 `toml:"critical_above"`
}

// Ingest contains document loading limits.
type Ingest struct {
	Extensions   []string `toml:"extensions"`
	MaxFileBytes int64    `toml:"max_file_bytes"`
}

// Highlight contains the markers wrapped around matched sentences when output
// is not a terminal.
type Highlight struct {
	Open  string `toml:"open"`
	Close string `toml:"close"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for plagr.
//
// Configuration sections by subsystem:
//   - Paths: log and report directories
//   - Analysis: sentence matching thresholds and worker count
//   - Risk: score boundaries between LOW, MODERATE and CRITICAL
//   - Ingest: accepted file extensions and size limit
//   - Highlight: plain-text markers for matched sentences
//   - Logging: log format and level
type Config struct {
	Paths     Paths     `toml:"paths"`
	Analysis  Analysis  `toml:"analysis"`
	Risk      Risk      `toml:"risk"`
	Ingest    Ingest    `toml:"ingest"`
	Highlight Highlight `toml:"highlight"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/plagr/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("plagr.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the log directory when file logging is enabled.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return nil
	}
	if err := os.MkdirAll(c.Paths.LogDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.LogDir, err)
	}
	return nil
}

// AllowsExtension reports whether ext (with or without a leading dot) is an
// accepted input format.
func (c *Config) AllowsExtension(ext string) bool {
	ext = canonicalExtension(ext)
	for _, allowed := range c.Ingest.Extensions {
		if allowed == ext {
			return true
		}
	}
	return false
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
