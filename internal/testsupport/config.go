package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/ayanbhoumick/Plagiarism/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.ReportDir = filepath.Join(base, "reports")
	cfgVal.Logging.Level = "debug"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithoutLogFile disables the plagr.log file.
func WithoutLogFile() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.LogDir = ""
	}
}

// WithRisk overrides the risk boundaries.
func WithRisk(moderateAbove, criticalAbove float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Risk.ModerateAbove = moderateAbove
		b.cfg.Risk.CriticalAbove = criticalAbove
	}
}

// WithMaxFileBytes overrides the ingest size limit.
func WithMaxFileBytes(limit int64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Ingest.MaxFileBytes = limit
	}
}

// WithWorkers overrides the pair scoring concurrency.
func WithWorkers(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Analysis.Workers = n
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.ReportDir)
}
