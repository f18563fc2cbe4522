package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and database locations.
type Paths struct {
	LogDir    string `toml:"log_dir"`
	HistoryDB string `toml:"history_db"`
}

// Scan controls how folder listings are partitioned.
type Scan struct {
	// VideoExtensions classify companion video files. They are never opened.
	VideoExtensions []string `toml:"video_extensions"`
}

// Naming controls output filename derivation.
type Naming struct {
	// FallbackPrefix prefixes subtitles that match no video.
	FallbackPrefix string `toml:"fallback_prefix"`
}

// Batch contains run-level settings.
type Batch struct {
	LockFileName    string `toml:"lock_file_name"`
	MinFreeSpaceMiB int    `toml:"min_free_space_mib"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// History controls run history persistence.
type History struct {
	Enabled bool `toml:"enabled"`
}

// Config encapsulates all configuration values for SubSync.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Scan    Scan    `toml:"scan"`
	Naming  Naming  `toml:"naming"`
	Batch   Batch   `toml:"batch"`
	Logging Logging `toml:"logging"`
	History History `toml:"history"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/subsync/config.toml")
}

// Load locates, parses, normalizes, and validates a configuration file. It
// returns the config, the resolved path, and whether the file existed. A
// missing file is not an error; defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("config file not found: %s", expanded)
			}
			return "", false, fmt.Errorf("inspect config: %w", err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config path is a directory: %s", expanded)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(defaultPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultPath, false, nil
		}
		return "", false, fmt.Errorf("inspect config: %w", err)
	}
	return defaultPath, true, nil
}

func (c *Config) normalize() error {
	var err error
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.HistoryDB) == "" {
		c.Paths.HistoryDB = defaultHistoryDB
	}
	if c.Paths.HistoryDB, err = ExpandPath(c.Paths.HistoryDB); err != nil {
		return fmt.Errorf("paths.history_db: %w", err)
	}

	normalized := make([]string, 0, len(c.Scan.VideoExtensions))
	for _, ext := range c.Scan.VideoExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	if len(normalized) > 0 {
		c.Scan.VideoExtensions = normalized
	} else {
		c.Scan.VideoExtensions = append([]string{}, defaultVideoExtensions...)
	}

	if strings.TrimSpace(c.Naming.FallbackPrefix) == "" {
		c.Naming.FallbackPrefix = defaultFallbackPrefix
	}
	if strings.TrimSpace(c.Batch.LockFileName) == "" {
		c.Batch.LockFileName = defaultLockFileName
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

// EnsureDirectories creates the directories the tool writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.LogDir, filepath.Dir(c.Paths.HistoryDB)}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// VideoExtensionSet returns the configured video extensions as a lookup set.
func (c *Config) VideoExtensionSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Scan.VideoExtensions))
	for _, ext := range c.Scan.VideoExtensions {
		set[ext] = struct{}{}
	}
	return set
}

// SampleConfig returns the embedded sample configuration file content.
func SampleConfig() string {
	return sampleConfig
}

// WriteSample writes the sample configuration to path, refusing to overwrite
// an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("inspect config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ExpandPath resolves a leading ~ to the user's home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
