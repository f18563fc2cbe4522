package timecode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Dialect selects one of the supported timestamp grammars.
type Dialect int

const (
	// DialectSRT is the SubRip grammar: HH:MM:SS,mmm.
	DialectSRT Dialect = iota
	// DialectASS is the Advanced SubStation grammar: H:MM:SS.cc.
	DialectASS
)

// ErrMalformedTimestamp reports text that resembles a timestamp but fails the
// dialect's exact grammar.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// grammar holds the per-dialect field constants.
type grammar struct {
	name       string
	fracSep    string
	fracDigits int
	fracUnitMS int64
	hourDigits int // exact width; 0 means unpadded (one or more digits)
}

var grammars = map[Dialect]grammar{
	DialectSRT: {name: "srt", fracSep: ",", fracDigits: 3, fracUnitMS: 1, hourDigits: 2},
	DialectASS: {name: "ass", fracSep: ".", fracDigits: 2, fracUnitMS: 10, hourDigits: 0},
}

// String returns the lowercase dialect name matching its file extension.
func (d Dialect) String() string {
	if g, ok := grammars[d]; ok {
		return g.name
	}
	return fmt.Sprintf("dialect(%d)", int(d))
}

// ForExtension maps a subtitle file extension to its dialect. The extension
// comparison is case-insensitive and expects the leading dot.
func ForExtension(ext string) (Dialect, bool) {
	switch strings.ToLower(ext) {
	case ".srt":
		return DialectSRT, true
	case ".ass":
		return DialectASS, true
	}
	return 0, false
}

// Decode parses text into a millisecond count using the dialect's exact
// grammar. Field widths and separators are enforced; a one-off digit count is
// rejected rather than coerced.
func Decode(text string, d Dialect) (int64, error) {
	g, ok := grammars[d]
	if !ok {
		return 0, fmt.Errorf("%w: unknown dialect %d", ErrMalformedTimestamp, int(d))
	}

	fields := strings.SplitN(text, ":", 3)
	if len(fields) != 3 {
		return 0, malformed(g, text, "expected H:MM:SS fields")
	}
	hourText, minuteText := fields[0], fields[1]

	secFields := strings.SplitN(fields[2], g.fracSep, 2)
	if len(secFields) != 2 {
		return 0, malformed(g, text, fmt.Sprintf("missing %q separator", g.fracSep))
	}
	secondText, fracText := secFields[0], secFields[1]

	if g.hourDigits > 0 {
		if !isDigits(hourText, g.hourDigits) {
			return 0, malformed(g, text, fmt.Sprintf("hours must be %d digits", g.hourDigits))
		}
	} else if hourText == "" || !isDigits(hourText, len(hourText)) {
		return 0, malformed(g, text, "hours must be digits")
	}
	if !isDigits(minuteText, 2) {
		return 0, malformed(g, text, "minutes must be 2 digits")
	}
	if !isDigits(secondText, 2) {
		return 0, malformed(g, text, "seconds must be 2 digits")
	}
	if !isDigits(fracText, g.fracDigits) {
		return 0, malformed(g, text, fmt.Sprintf("fraction must be %d digits", g.fracDigits))
	}

	hours, _ := strconv.ParseInt(hourText, 10, 64)
	minutes, _ := strconv.ParseInt(minuteText, 10, 64)
	seconds, _ := strconv.ParseInt(secondText, 10, 64)
	frac, _ := strconv.ParseInt(fracText, 10, 64)

	return hours*3600000 + minutes*60000 + seconds*1000 + frac*g.fracUnitMS, nil
}

// Encode renders a millisecond count in the dialect's grammar, zero-padded to
// its fixed field widths. Negative inputs render as zero. For ASS the
// sub-centisecond remainder is truncated; that is a format limitation, not a
// rounding choice.
func Encode(ms int64, d Dialect) string {
	if ms < 0 {
		ms = 0
	}
	hours := ms / 3600000
	minutes := (ms % 3600000) / 60000
	seconds := (ms % 60000) / 1000
	frac := ms % 1000

	g := grammars[d]
	if g.fracUnitMS > 1 {
		frac /= g.fracUnitMS
	}
	if g.hourDigits > 0 {
		return fmt.Sprintf("%0*d:%02d:%02d%s%0*d", g.hourDigits, hours, minutes, seconds, g.fracSep, g.fracDigits, frac)
	}
	return fmt.Sprintf("%d:%02d:%02d%s%0*d", hours, minutes, seconds, g.fracSep, g.fracDigits, frac)
}

func malformed(g grammar, text, detail string) error {
	return fmt.Errorf("%w: %s %q: %s", ErrMalformedTimestamp, g.name, text, detail)
}

// isDigits reports whether s is exactly width ASCII digits.
func isDigits(s string, width int) bool {
	if len(s) != width {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
