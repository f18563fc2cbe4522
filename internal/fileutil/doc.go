// Package fileutil reads and writes subtitle documents.
//
// Reads tolerate the encodings found in the wild: UTF-8 (with or without a
// BOM) is passed through untouched, and anything that is not valid UTF-8 is
// decoded as Windows-1252, the dominant legacy encoding for SRT files.
// Writes are atomic per file — content lands in a temp file in the target
// directory and is renamed into place, so an interrupted run never leaves a
// half-written subtitle behind.
package fileutil
