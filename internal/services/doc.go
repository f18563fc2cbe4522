// Package services defines shared utilities consumed by the batch runner and
// the CLI commands.
//
// It provides context helpers that stamp run identifiers and target folders
// for logging, plus structured error markers and the Wrap helper that keep
// failure reporting uniform: per-file failures are recoverable and the batch
// continues, while enumeration and locking failures abort the run.
package services
