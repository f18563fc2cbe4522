// Package timecode parses and formats the two subtitle timestamp grammars
// SubSync understands.
//
// The SRT dialect is HH:MM:SS,mmm with fixed two-digit hour, minute, and
// second fields and three millisecond digits. The ASS dialect is H:MM:SS.cc
// with unpadded hours and two centisecond digits. The dialect is chosen once
// per document from the file extension, never sniffed from content.
//
// Decoding is strict: a timestamp whose field widths or separators deviate
// from the dialect's grammar is rejected with ErrMalformedTimestamp instead
// of being coerced. Values are carried as integer millisecond counts, so
// Decode and Encode round-trip exactly for SRT; ASS loses the sub-centisecond
// remainder by design of the format.
package timecode
