package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateRisk(); err != nil {
		return err
	}
	if err := c.validateIngest(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	a := c.Analysis
	if a.MatchThreshold <= 0 || a.MatchThreshold > 1 {
		return errors.New("analysis.match_threshold must be greater than 0 and at most 1")
	}
	if a.MinSentenceLength < 0 {
		return errors.New("analysis.min_sentence_length must not be negative")
	}
	if a.MaxMatches == 0 || a.MaxMatches < -1 {
		return errors.New("analysis.max_matches must be positive (or -1 for no cap)")
	}
	if a.Workers <= 0 {
		return errors.New("analysis.workers must be positive")
	}
	return nil
}

func (c *Config) validateRisk() error {
	r := c.Risk
	if r.ModerateAbove < 0 || r.ModerateAbove > 1 {
		return errors.New("risk.moderate_above must be between 0 and 1")
	}
	if r.CriticalAbove < 0 || r.CriticalAbove > 1 {
		return errors.New("risk.critical_above must be between 0 and 1")
	}
	if r.ModerateAbove >= r.CriticalAbove {
		return fmt.Errorf("risk.moderate_above (%.2f) must be below risk.critical_above (%.2f)", r.ModerateAbove, r.CriticalAbove)
	}
	return nil
}

func (c *Config) validateIngest() error {
	if len(c.Ingest.Extensions) == 0 {
		return errors.New("ingest.extensions must include at least one extension")
	}
	for _, ext := range c.Ingest.Extensions {
		if !supportedExtension(ext) {
			return fmt.Errorf("ingest.extensions: unsupported extension %q", ext)
		}
	}
	if c.Ingest.MaxFileBytes < 0 {
		return errors.New("ingest.max_file_bytes must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func supportedExtension(ext string) bool {
	for _, known := range defaultExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
