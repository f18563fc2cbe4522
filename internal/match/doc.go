// Package match pairs subtitle files with video files that share an episode
// number and derives the output filename for each subtitle.
//
// Matching is a pure computation over the two file listings: no filesystem
// access, no shared state. Subtitles without a usable episode number, or
// without a video carrying the same number, are still emitted so the caller
// can write them under a fallback name instead of dropping them. When several
// videos carry the same episode number the first one in listing order wins;
// the ambiguity is accepted and left for the caller to log.
package match
