// Package main hosts the plagr CLI entrypoint and command graph.
//
// The Cobra-based command tree loads submissions from disk (or literal text),
// runs the overlap engine and renders scores, risk tiers and sentence
// evidence as tables, JSON or CSV. It centralizes configuration resolution
// and structured logging setup so subcommands can focus on presentation.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
