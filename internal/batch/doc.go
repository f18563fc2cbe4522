// Package batch orchestrates a full folder run: enumerate, match, shift,
// write.
//
// A run happens in two phases. Plan scans the folder once, partitions the
// listing into videos and subtitles by extension, extracts episode numbers,
// and computes the subtitle-to-video matching with derived output names.
// Execute takes the plan, locks the folder, and processes each subtitle
// sequentially and completely in memory: read, shift all timing lines, write
// the result atomically under the new name. Originals are never overwritten
// or removed.
//
// Failures are per-file: an unreadable subtitle or a failed write is logged,
// recorded in history, and the batch moves on. The only fatal conditions are
// an unenumerable folder and lock contention on the target folder.
package batch
