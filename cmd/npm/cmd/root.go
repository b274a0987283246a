// Package cmd provides the CLI commands for the npm client.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	proxymanager "github.com/constanine/nginx-proxy-manager"
	"github.com/constanine/nginx-proxy-manager/internal/config"
	"github.com/constanine/nginx-proxy-manager/tokenstore"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "npm",
	Short: "npm - Nginx Proxy Manager CLI",
	Long: `npm is a command line client for the Nginx Proxy Manager API.

It manages proxy hosts, redirection hosts, streams, dead hosts, access
lists and users, and reads the audit log and host reports.

Quick start:
  1. npm login --identity admin@example.com
  2. npm hosts list

Configuration:
  Config is loaded from npm-cli.yaml in the current directory,
  $HOME/.npm-cli/, or /etc/npm-cli/.

  Environment variables can override config values with the NPM_ prefix.
  Example: NPM_SERVER_ADDR=http://10.0.0.2:81

Login tokens are persisted in a local SQLite database
(default: $HOME/.npm-cli/tokens.db) so sessions survive restarts.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./npm-cli.yaml)")
}

func initConfig() {
	config.InitViper(cfgFile)
}

// newClient builds an API client from the loaded configuration, backed by
// the persistent token store. The caller must Close the returned store.
func newClient() (*proxymanager.Client, *tokenstore.SQLiteStore, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	timeout, err := time.ParseDuration(cfg.Server.Timeout)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid server.timeout: %w", err)
	}

	logger := newLogger(cfg.Server.LogLevel)

	store, err := tokenstore.Open(cfg.TokenStore.Path, logger)
	if err != nil {
		return nil, nil, err
	}

	client := proxymanager.NewClient(
		proxymanager.WithServerAddr(cfg.Server.Addr),
		proxymanager.WithTimeout(timeout),
		proxymanager.WithTokenStore(store),
		proxymanager.WithLogger(logger),
	)
	return client, store, nil
}

// newLogger builds a stderr text logger at the configured level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
