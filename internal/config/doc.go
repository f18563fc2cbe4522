// Package config loads, validates, and normalizes the TOML configuration.
//
// Configuration is optional: every field has a default, so the tool runs with
// no config file at all. Load resolves the file path (explicit flag, then
// ~/.config/subsync/config.toml), decodes it over the defaults, expands ~ in
// path fields, and validates the result. The embedded sample_config.toml is
// what `subsync config init` writes.
package config
