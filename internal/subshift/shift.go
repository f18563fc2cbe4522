package subshift

import (
	"regexp"
	"strings"

	"subsync/internal/timecode"
)

// Structural cue patterns. These are deliberately looser than the dialect
// grammars (any digit widths, either fraction separator) so that a near-miss
// timestamp surfaces as a warning instead of slipping through silently.
var (
	srtCuePattern = regexp.MustCompile(`^(.*?)(\d+:\d+:\d+[,.]\d+)(\s*-->\s*)(\d+:\d+:\d+[,.]\d+)(.*)$`)
	assCuePattern = regexp.MustCompile(`^(Dialogue:[^,]*,)(\d+:\d+:\d+[,.]\d+),(\d+:\d+:\d+[,.]\d+)(,.*)$`)
)

// Warning records a timing line that matched the structural pattern but
// failed strict decoding. The line was copied through unmodified.
type Warning struct {
	Line int // 1-based line number
	Text string
	Err  error
}

// Report summarizes one shift pass over a document.
type Report struct {
	ShiftedCues int
	ClampedCues int
	Warnings    []Warning
}

// Shift rewrites every timing line in doc by offsetMS (which may be
// negative), clamping shifted timestamps at zero. All non-timing content is
// preserved byte-for-byte, including blank lines and CRLF line endings.
func Shift(doc string, dialect timecode.Dialect, offsetMS int64) (string, Report) {
	var (
		out    strings.Builder
		report Report
	)
	out.Grow(len(doc))

	lineNumber := 0
	rest := doc
	for rest != "" {
		line, eol, next := splitLine(rest)
		lineNumber++

		rewritten, shifted, err := shiftLine(line, dialect, offsetMS, &report)
		switch {
		case err != nil:
			report.Warnings = append(report.Warnings, Warning{Line: lineNumber, Text: line, Err: err})
			out.WriteString(line)
		case shifted:
			report.ShiftedCues++
			out.WriteString(rewritten)
		default:
			out.WriteString(line)
		}
		out.WriteString(eol)
		rest = next
	}

	return out.String(), report
}

// shiftLine rewrites a single line if it is a timing line for the dialect.
// The boolean reports whether a rewrite happened; a non-nil error means the
// line looked like a cue but one of its timestamps failed strict decoding.
func shiftLine(line string, dialect timecode.Dialect, offsetMS int64, report *Report) (string, bool, error) {
	switch dialect {
	case timecode.DialectSRT:
		m := srtCuePattern.FindStringSubmatch(line)
		if m == nil {
			return "", false, nil
		}
		start, end, clamped, err := shiftPair(m[2], m[4], dialect, offsetMS)
		if err != nil {
			return "", false, err
		}
		if clamped {
			report.ClampedCues++
		}
		return m[1] + start + m[3] + end + m[5], true, nil
	case timecode.DialectASS:
		m := assCuePattern.FindStringSubmatch(line)
		if m == nil {
			return "", false, nil
		}
		start, end, clamped, err := shiftPair(m[2], m[3], dialect, offsetMS)
		if err != nil {
			return "", false, err
		}
		if clamped {
			report.ClampedCues++
		}
		return m[1] + start + "," + end + m[4], true, nil
	default:
		return "", false, nil
	}
}

// shiftPair decodes, offsets, clamps, and re-encodes a cue's timestamp pair.
// Both timestamps shift by the identical offset. Clamping at zero applies to
// each independently; because the offset is shared, a start <= end input can
// never invert.
func shiftPair(startText, endText string, dialect timecode.Dialect, offsetMS int64) (string, string, bool, error) {
	startMS, err := timecode.Decode(startText, dialect)
	if err != nil {
		return "", "", false, err
	}
	endMS, err := timecode.Decode(endText, dialect)
	if err != nil {
		return "", "", false, err
	}

	newStart := startMS + offsetMS
	newEnd := endMS + offsetMS
	clamped := false
	if newStart < 0 {
		newStart = 0
		clamped = true
	}
	if newEnd < 0 {
		newEnd = 0
		clamped = true
	}
	// Clamped end never drops below clamped start.
	if newEnd < newStart && endMS >= startMS {
		newEnd = newStart
	}

	return timecode.Encode(newStart, dialect), timecode.Encode(newEnd, dialect), clamped, nil
}

// splitLine returns the next line without its terminator, the terminator
// itself ("" for a final unterminated line), and the remainder of the text.
func splitLine(text string) (line, eol, rest string) {
	idx := strings.IndexByte(text, '\n')
	if idx < 0 {
		return text, "", ""
	}
	line = text[:idx]
	eol = "\n"
	if strings.HasSuffix(line, "\r") {
		line = line[:len(line)-1]
		eol = "\r\n"
	}
	return line, eol, text[idx+1:]
}
