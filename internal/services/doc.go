// Package services defines shared utilities consumed by the analysis engine,
// the document loaders and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp run correlation identifiers and stage names
//     for logging.
//   - Structured error markers plus the Wrap helper that keep failures
//     classifiable (recoverable input problems vs internal faults).
//
// Use these helpers when wiring new components so error handling and
// observability stay uniform across the tool.
package services
