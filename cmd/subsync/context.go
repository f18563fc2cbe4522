package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"subsync/internal/batch"
	"subsync/internal/config"
	"subsync/internal/history"
	"subsync/internal/logging"
)

// commandContext shares lazily constructed dependencies between commands.
type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger(w io.Writer) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Writer: w,
		})
	})
	return c.logger, c.loggerErr
}

// newRunner builds the batch runner plus a cleanup closing the history store.
// A broken history store downgrades to a warning; the batch still runs.
func (c *commandContext) newRunner(logWriter io.Writer) (*batch.Runner, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger(logWriter)
	if err != nil {
		return nil, nil, err
	}

	var store *history.Store
	cleanup := func() {}
	if cfg.History.Enabled {
		store, err = history.Open(cfg)
		if err != nil {
			logger.Warn("run history unavailable; continuing without it", logging.Error(err))
			store = nil
		} else {
			cleanup = func() { _ = store.Close() }
		}
	}
	return batch.New(cfg, store, logger), cleanup, nil
}

// openStore opens the history store for read-only commands. Unlike newRunner
// this treats an unavailable store as an error.
func (c *commandContext) openStore() (*history.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return history.Open(cfg)
}
