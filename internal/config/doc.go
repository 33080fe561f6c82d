// Package config loads, normalizes, and validates plagr configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the PLAGR_LOG_LEVEL environment
// fallback. The Config type centralizes every knob the CLI and the analysis
// engine need: sentence matching thresholds, risk tier boundaries, accepted
// input formats and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical enum values, and clear validation errors.
package config
