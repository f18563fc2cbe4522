package subshift

import (
	"strings"
	"testing"

	"subsync/internal/timecode"
)

const srtDoc = `1
00:00:01,000 --> 00:00:02,500
Hello there.

2
00:00:04,250 --> 00:00:06,000
<i>Styled line</i> stays styled.
`

const assDoc = `[Script Info]
Title: Example

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:02.50,Default,Speaker,0,0,0,,Hello there.
Dialogue: 0,0:00:04.25,0:00:06.00,Default,,0,0,0,,{\i1}Styled{\i0} text.
`

func TestShiftSRTForward(t *testing.T) {
	got, report := Shift(srtDoc, timecode.DialectSRT, 1500)
	if report.ShiftedCues != 2 {
		t.Fatalf("expected 2 shifted cues, got %d", report.ShiftedCues)
	}
	if len(report.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", report.Warnings)
	}
	if !strings.Contains(got, "00:00:02,500 --> 00:00:04,000") {
		t.Fatalf("first cue not shifted:\n%s", got)
	}
	if !strings.Contains(got, "00:00:05,750 --> 00:00:07,500") {
		t.Fatalf("second cue not shifted:\n%s", got)
	}
	if !strings.Contains(got, "<i>Styled line</i> stays styled.") {
		t.Fatalf("cue text modified:\n%s", got)
	}
}

func TestShiftASSForward(t *testing.T) {
	got, report := Shift(assDoc, timecode.DialectASS, 1500)
	if report.ShiftedCues != 2 {
		t.Fatalf("expected 2 shifted cues, got %d", report.ShiftedCues)
	}
	if !strings.Contains(got, "Dialogue: 0,0:00:02.50,0:00:04.00,Default,Speaker,0,0,0,,Hello there.") {
		t.Fatalf("first dialogue not shifted:\n%s", got)
	}
	if !strings.Contains(got, "0:00:05.75,0:00:07.50,Default,,0,0,0,,{\\i1}Styled{\\i0} text.") {
		t.Fatalf("second dialogue not shifted or styling lost:\n%s", got)
	}
	if !strings.Contains(got, "[Script Info]") || !strings.Contains(got, "Format: Layer, Start, End,") {
		t.Fatalf("non-dialogue lines modified:\n%s", got)
	}
}

func TestShiftClampsAtZero(t *testing.T) {
	doc := "1\n00:00:00,200 --> 00:00:01,000\nEarly cue.\n"
	got, report := Shift(doc, timecode.DialectSRT, -500)
	if !strings.Contains(got, "00:00:00,000 --> 00:00:00,500") {
		t.Fatalf("start not clamped to zero:\n%s", got)
	}
	if report.ClampedCues != 1 {
		t.Fatalf("expected 1 clamped cue, got %d", report.ClampedCues)
	}
}

func TestShiftCanCollapseRangeToZeroLength(t *testing.T) {
	doc := "1\n00:00:00,100 --> 00:00:00,300\nGone.\n"
	got, _ := Shift(doc, timecode.DialectSRT, -500)
	if !strings.Contains(got, "00:00:00,000 --> 00:00:00,000") {
		t.Fatalf("range should collapse to zero-length at zero:\n%s", got)
	}
}

func TestShiftThenUnshiftIsIdentity(t *testing.T) {
	forward, _ := Shift(srtDoc, timecode.DialectSRT, 4321)
	back, _ := Shift(forward, timecode.DialectSRT, -4321)
	if back != srtDoc {
		t.Fatalf("shift round trip diverged:\n%s", back)
	}
}

func TestShiftMalformedCueLinePassesThrough(t *testing.T) {
	doc := "1\n00:00:01,00 --> 00:00:02,000\nBad millisecond width.\n"
	got, report := Shift(doc, timecode.DialectSRT, 1000)
	if got != doc {
		t.Fatalf("malformed line must pass through unchanged:\n%s", got)
	}
	if len(report.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", report.Warnings)
	}
	if report.Warnings[0].Line != 2 {
		t.Fatalf("warning should point at line 2, got %d", report.Warnings[0].Line)
	}
}

func TestShiftMalformedCueDoesNotAbortDocument(t *testing.T) {
	doc := "1\n00:00:01.000 --> 00:00:02,000\nWrong separator.\n\n2\n00:00:05,000 --> 00:00:06,000\nFine.\n"
	got, report := Shift(doc, timecode.DialectSRT, 1000)
	if len(report.Warnings) != 1 || report.ShiftedCues != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if !strings.Contains(got, "00:00:01.000 --> 00:00:02,000") {
		t.Fatalf("bad line should be untouched:\n%s", got)
	}
	if !strings.Contains(got, "00:00:06,000 --> 00:00:07,000") {
		t.Fatalf("later cue should still shift:\n%s", got)
	}
}

func TestShiftPreservesCRLFAndTrailingNewline(t *testing.T) {
	doc := "1\r\n00:00:01,000 --> 00:00:02,000\r\nLine.\r\n"
	got, _ := Shift(doc, timecode.DialectSRT, 1000)
	if !strings.Contains(got, "00:00:02,000 --> 00:00:03,000\r\n") {
		t.Fatalf("CRLF lost on cue line:\n%q", got)
	}
	if !strings.HasSuffix(got, "Line.\r\n") {
		t.Fatalf("trailing CRLF lost: %q", got)
	}

	noTrailing := "1\n00:00:01,000 --> 00:00:02,000\nLine."
	got, _ = Shift(noTrailing, timecode.DialectSRT, 1000)
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("trailing newline introduced: %q", got)
	}
}

func TestShiftLeavesNonCueLinesByteIdentical(t *testing.T) {
	got, _ := Shift(srtDoc, timecode.DialectSRT, 250)
	wantLines := strings.Split(srtDoc, "\n")
	gotLines := strings.Split(got, "\n")
	if len(wantLines) != len(gotLines) {
		t.Fatalf("line count changed: %d -> %d", len(wantLines), len(gotLines))
	}
	for i, line := range wantLines {
		if strings.Contains(line, "-->") {
			continue
		}
		if gotLines[i] != line {
			t.Fatalf("non-cue line %d changed: %q -> %q", i+1, line, gotLines[i])
		}
	}
}

func TestShiftASSIgnoresNonDialogueTimestamps(t *testing.T) {
	// Comment lines in ASS carry the same field layout but are not Dialogue
	// records; they pass through untouched.
	doc := "Comment: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Note.\n"
	got, report := Shift(doc, timecode.DialectASS, 1000)
	if got != doc || report.ShiftedCues != 0 {
		t.Fatalf("comment line should pass through: %q (%+v)", got, report)
	}
}

func TestShiftEmptyDocument(t *testing.T) {
	got, report := Shift("", timecode.DialectSRT, 1000)
	if got != "" || report.ShiftedCues != 0 {
		t.Fatalf("unexpected result for empty document: %q %+v", got, report)
	}
}
