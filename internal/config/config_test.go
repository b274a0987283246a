package config

import (
	"strings"
	"testing"
)

func TestSetDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()

	if cfg.Server.Addr != "http://127.0.0.1:81" {
		t.Errorf("addr default mismatch: %q", cfg.Server.Addr)
	}
	if cfg.Server.Timeout != "15s" {
		t.Errorf("timeout default mismatch: %q", cfg.Server.Timeout)
	}
	if cfg.Server.LogLevel != "info" {
		t.Errorf("log level default mismatch: %q", cfg.Server.LogLevel)
	}
	if cfg.TokenStore.Path == "" {
		t.Error("expected a default token store path")
	}
}

func TestSetDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Server: ServerConfig{
			Addr:     "http://npm.internal:81",
			Timeout:  "30s",
			LogLevel: "debug",
		},
		TokenStore: TokenStoreConfig{Path: "/var/lib/npm/tokens.db"},
	}
	cfg.SetDefaults()

	if cfg.Server.Addr != "http://npm.internal:81" || cfg.Server.Timeout != "30s" {
		t.Errorf("explicit values overwritten: %+v", cfg.Server)
	}
	if cfg.TokenStore.Path != "/var/lib/npm/tokens.db" {
		t.Errorf("explicit path overwritten: %q", cfg.TokenStore.Path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "invalid url",
			mutate:  func(c *Config) { c.Server.Addr = "not a url" },
			wantErr: "must be a valid URL",
		},
		{
			name:    "invalid timeout",
			mutate:  func(c *Config) { c.Server.Timeout = "fifteen seconds" },
			wantErr: "must be a valid duration",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Server.LogLevel = "verbose" },
			wantErr: "must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			cfg.SetDefaults()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}
