// Package report exports comparison results as CSV, the only durable artifact
// plagr produces. Save writes atomically under an advisory file lock so two
// runs targeting the same report path never interleave rows.
package report
