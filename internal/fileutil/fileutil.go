package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding names reported by ReadDocument.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
)

// ReadDocument loads a subtitle file and returns its text plus the encoding
// that was applied, so callers can log the legacy-encoding fallback. Valid
// UTF-8 content is returned byte-for-byte, BOM included; anything else is
// transcoded from Windows-1252.
func ReadDocument(path string) (string, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read subtitle: %w", err)
	}
	if utf8.Valid(raw) {
		return string(raw), EncodingUTF8, nil
	}
	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
	if err != nil {
		return "", "", fmt.Errorf("decode windows-1252: %w", err)
	}
	return string(decoded), EncodingWindows1252, nil
}

// WriteDocument writes text to path atomically: content goes to a temp file
// in the same directory and is renamed into place.
func WriteDocument(path, text string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".subsync-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	// CreateTemp uses 0600; published subtitles should be world-readable.
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
