// Package config provides configuration types for the npm CLI.
package config

import (
	"os"
	"path/filepath"
)

// Config is the top-level configuration for the npm CLI.
type Config struct {
	// Server configures the backend the CLI talks to.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// TokenStore configures where login tokens are persisted.
	TokenStore TokenStoreConfig `yaml:"token_store" mapstructure:"token_store"`
}

// ServerConfig configures the backend endpoint.
type ServerConfig struct {
	// Addr is the backend base address (e.g. "http://127.0.0.1:81").
	// Defaults to "http://127.0.0.1:81" if empty.
	Addr string `yaml:"addr" mapstructure:"addr" validate:"omitempty,url"`

	// Timeout is the per-call timeout (e.g. "15s", "1m").
	// Defaults to "15s" if empty.
	Timeout string `yaml:"timeout" mapstructure:"timeout" validate:"omitempty,duration"`

	// LogLevel sets the minimum log level.
	// Valid values: "debug", "info", "warn", "error".
	// Defaults to "info" if empty.
	LogLevel string `yaml:"log_level" mapstructure:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
}

// TokenStoreConfig configures token persistence.
type TokenStoreConfig struct {
	// Path is the SQLite database file holding login tokens.
	// Defaults to "$HOME/.npm-cli/tokens.db".
	Path string `yaml:"path" mapstructure:"path"`
}

// SetDefaults applies sensible default values to the configuration.
func (c *Config) SetDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = "http://127.0.0.1:81"
	}
	if c.Server.Timeout == "" {
		c.Server.Timeout = "15s"
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.TokenStore.Path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.TokenStore.Path = filepath.Join(home, ".npm-cli", "tokens.db")
		} else {
			c.TokenStore.Path = "tokens.db"
		}
	}
}
