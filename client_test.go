package proxymanager

import (
	"testing"
	"time"
)

func TestNewClientDefaults(t *testing.T) {
	client := NewClient()

	if client.timeout != DefaultTimeout {
		t.Errorf("expected default timeout %v, got %v", DefaultTimeout, client.timeout)
	}
	if client.tokens == nil {
		t.Error("expected a default token store")
	}
	if client.httpClient == nil || client.httpClient.Jar == nil {
		t.Error("expected a default http client with a cookie jar")
	}
	if client.Users == nil || client.ProxyHosts == nil || client.Tokens == nil {
		t.Error("expected all services to be wired")
	}
}

func TestNewClientEnvVars(t *testing.T) {
	t.Setenv("NPM_SERVER_ADDR", "http://npm.internal:81")
	t.Setenv("NPM_TIMEOUT", "5000")

	client := NewClient()
	if client.serverAddr != "http://npm.internal:81" {
		t.Errorf("server addr mismatch: %q", client.serverAddr)
	}
	// Bare integers are milliseconds.
	if client.timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", client.timeout)
	}
}

func TestNewClientEnvDurationString(t *testing.T) {
	t.Setenv("NPM_TIMEOUT", "30s")

	client := NewClient()
	if client.timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", client.timeout)
	}
}

func TestNewClientOptionsOverrideEnv(t *testing.T) {
	t.Setenv("NPM_SERVER_ADDR", "http://from-env:81")

	store := NewMemoryTokenStore()
	client := NewClient(
		WithServerAddr("http://from-option:81"),
		WithTimeout(2*time.Second),
		WithTokenStore(store),
	)

	if client.serverAddr != "http://from-option:81" {
		t.Errorf("option must win over env, got %q", client.serverAddr)
	}
	if client.timeout != 2*time.Second {
		t.Errorf("timeout mismatch: %v", client.timeout)
	}
	if client.tokens != TokenStore(store) {
		t.Error("token store option not applied")
	}
}
