package testsupport

import (
	"path/filepath"
	"testing"

	"subsync/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.HistoryDB = filepath.Join(base, "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithFallbackPrefix overrides the fallback naming prefix on the test config.
func WithFallbackPrefix(prefix string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Naming.FallbackPrefix = prefix
	}
}

// WithHistoryDisabled turns off run history recording on the test config.
func WithHistoryDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.History.Enabled = false
	}
}
