// Package subshift rewrites the timing lines of a subtitle document by a
// fixed signed offset.
//
// The document is scanned line by line. SRT cue lines carry a
// "start --> end" pair; ASS timing lives in the second and third fields of
// "Dialogue:" records. Both timestamps of a cue are decoded, shifted by the
// same offset, clamped at zero, re-encoded, and spliced back into the line.
// Everything else — cue text, styling, actor fields, blank lines, and the
// line-ending style — passes through byte-for-byte.
//
// A timing line that matches the structural pattern but fails strict decoding
// is left untouched and reported as a warning; a single bad cue never aborts
// the document.
package subshift
