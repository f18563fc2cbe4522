package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Naming.FallbackPrefix != "shifted_" {
		t.Fatalf("unexpected fallback prefix %q", cfg.Naming.FallbackPrefix)
	}
	if len(cfg.Scan.VideoExtensions) != 3 {
		t.Fatalf("unexpected video extensions %v", cfg.Scan.VideoExtensions)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, _, exists, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("no config file should exist in a fresh home")
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected log format %q", cfg.Logging.Format)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[naming]
fallback_prefix = "resync_"

[scan]
video_extensions = ["MKV", "webm"]

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists || resolved == "" {
		t.Fatalf("expected existing config, got exists=%v path=%q", exists, resolved)
	}
	if cfg.Naming.FallbackPrefix != "resync_" {
		t.Fatalf("override lost: %q", cfg.Naming.FallbackPrefix)
	}
	if got := cfg.Scan.VideoExtensions; len(got) != 2 || got[0] != ".mkv" || got[1] != ".webm" {
		t.Fatalf("extensions not normalized: %v", got)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level override lost: %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bad log format",
			content: "[logging]\nformat = \"yaml\"\n",
			want:    "logging.format",
		},
		{
			name:    "subtitle extension as video",
			content: "[scan]\nvideo_extensions = [\".srt\"]\n",
			want:    "collides",
		},
		{
			name:    "prefix with separator",
			content: "[naming]\nfallback_prefix = \"out/\"\n",
			want:    "fallback_prefix",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, _, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("explicitly named missing config must error")
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatal(err)
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected overwrite refusal")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/sub/dir")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "sub", "dir") {
		t.Fatalf("unexpected expansion %q", got)
	}
}
