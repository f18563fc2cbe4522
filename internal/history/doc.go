// Package history persists batch run records in SQLite.
//
// Each run row captures the folder, offset, timing, and outcome counters;
// run_files rows record the per-subtitle results (matched, fallback, or
// failed, with the derived output name). The database is an audit trail, not
// operational state — the batch runs fine with history disabled.
//
// Schema changes bump schemaVersion in schema.go; the store refuses to open
// a database with a different version rather than migrating in place.
package history
