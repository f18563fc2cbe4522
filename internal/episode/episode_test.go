package episode

import "testing"

func TestExtract(t *testing.T) {
	cases := []struct {
		filename string
		want     int
		ok       bool
	}{
		{"Show.E01.1080p.mkv", 1, true},
		{"Show - 001.ass", 1, true},
		{"Show.ep12.mkv", 12, true},
		{"RandomName.mkv", 0, false},
		{"[Group] Show - 01.srt", 1, true},
		{"show.e001.srt", 1, true},
		{"Series Episode 42.mkv", 42, true},
		{"Series_episode_7.srt", 7, true},
		{"Title - 103 [720p].mkv", 103, true},
		{"Movie.2024.mkv", 0, false},
		{"nothing here", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			got, ok := Extract(tc.filename)
			if ok != tc.ok {
				t.Fatalf("Extract(%q) ok = %v, want %v", tc.filename, ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("Extract(%q) = %d, want %d", tc.filename, got, tc.want)
			}
		})
	}
}

func TestRulePrecedence(t *testing.T) {
	// Both the E-number and dash-number conventions appear; the E rule is
	// tried first and must win.
	m, ok := Find("Show.E05 - 99.mkv")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Rule != "e-number" || m.Number != 5 {
		t.Fatalf("unexpected match %+v", m)
	}
}

func TestFindReportsRule(t *testing.T) {
	m, ok := Find("Show - 08.srt")
	if !ok || m.Rule != "dash-number" {
		t.Fatalf("unexpected match %+v ok=%v", m, ok)
	}
}

func TestLeadingZerosStripped(t *testing.T) {
	got, ok := Extract("Show - 007.srt")
	if !ok || got != 7 {
		t.Fatalf("Extract = %d ok=%v, want 7", got, ok)
	}
}
