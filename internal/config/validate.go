package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateNaming(); err != nil {
		return err
	}
	if err := c.validateBatch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	if len(c.Scan.VideoExtensions) == 0 {
		return errors.New("scan.video_extensions must not be empty")
	}
	for _, ext := range c.Scan.VideoExtensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("scan.video_extensions entry %q must be a dotted extension", ext)
		}
		if ext == ".srt" || ext == ".ass" {
			return fmt.Errorf("scan.video_extensions entry %q collides with a subtitle extension", ext)
		}
	}
	return nil
}

func (c *Config) validateNaming() error {
	prefix := c.Naming.FallbackPrefix
	if strings.ContainsAny(prefix, "/\\") {
		return fmt.Errorf("naming.fallback_prefix %q must not contain path separators", prefix)
	}
	return nil
}

func (c *Config) validateBatch() error {
	if c.Batch.MinFreeSpaceMiB < 0 {
		return errors.New("batch.min_free_space_mib must not be negative")
	}
	if strings.ContainsAny(c.Batch.LockFileName, "/\\") {
		return fmt.Errorf("batch.lock_file_name %q must be a bare filename", c.Batch.LockFileName)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
