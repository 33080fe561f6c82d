// Package logging assembles structured slog loggers and formatting helpers used
// across plagr.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so engine code can automatically tag log
// lines with the run correlation ID and analysis stage. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
//
// Logs always go to stderr (plus an optional file) because stdout carries
// command results such as tables, JSON and CSV.
package logging
