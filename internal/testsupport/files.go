package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleSRT is a small valid SubRip document.
const SampleSRT = `1
00:00:10,000 --> 00:00:12,500
First line.

2
00:00:15,000 --> 00:00:17,000
Second line.
`

// SampleASS is a small valid SubStation document.
const SampleASS = `[Script Info]
Title: Sample

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:10.00,0:00:12.50,Default,,0,0,0,,First line.
Dialogue: 0,0:00:15.00,0:00:17.00,Default,,0,0,0,,Second line.
`

// WriteFile writes content under dir and fails the test on error.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// TouchVideo creates an empty placeholder video file; videos are classified
// by extension only and never opened.
func TouchVideo(t testing.TB, dir, name string) string {
	t.Helper()
	return WriteFile(t, dir, name, "")
}
