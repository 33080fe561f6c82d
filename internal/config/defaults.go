package config

const (
	defaultLogDir            = "~/.local/share/plagr/logs"
	defaultReportDir         = "."
	defaultMatchThreshold    = 0.65
	defaultMinSentenceLength = 20
	defaultMaxMatches        = 50
	defaultWorkers           = 1
	defaultModerateAbove     = 0.4
	defaultCriticalAbove     = 0.7
	defaultMaxFileBytes      = 16 << 20
	defaultHighlightOpen     = "[["
	defaultHighlightClose    = "]]"
	defaultLogFormat         = "console"
	defaultLogLevel          = "warn"
)

var defaultExtensions = []string{".txt", ".md", ".html", ".htm", ".pdf", ".docx"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			ReportDir: defaultReportDir,
		},
		Analysis: Analysis{
			MatchThreshold:    defaultMatchThreshold,
			MinSentenceLength: defaultMinSentenceLength,
			MaxMatches:        defaultMaxMatches,
			Workers:           defaultWorkers,
		},
		Risk: Risk{
			ModerateAbove: defaultModerateAbove,
			CriticalAbove: defaultCriticalAbove,
		},
		Ingest: Ingest{
			Extensions:   append([]string(nil), defaultExtensions...),
			MaxFileBytes: defaultMaxFileBytes,
		},
		Highlight: Highlight{
			Open:  defaultHighlightOpen,
			Close: defaultHighlightClose,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
