// Package tokenstore provides a persistent, SQLite-backed implementation of
// proxymanager.TokenStore. It keeps the same token-stack semantics as the
// in-memory store so CLI logins survive process restarts.
package tokenstore

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	_ "modernc.org/sqlite"

	proxymanager "github.com/constanine/nginx-proxy-manager"
)

const schema = `
CREATE TABLE IF NOT EXISTS tokens (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	token   TEXT NOT NULL,
	expires TEXT NOT NULL DEFAULT ''
);
`

// SQLiteStore implements proxymanager.TokenStore on a local SQLite file.
// The stack order is the insertion order; the current token is the
// newest row.
//
// The TokenStore interface is read-heavy and errorless, so storage errors
// are logged and treated as an empty store rather than propagated.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.Mutex
	logger *slog.Logger
}

// Open creates or opens a token database at the given path. Parent
// directories are created as needed and the database file is kept at 0600.
func Open(path string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("create token store dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open token store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init token store schema: %w", err)
	}

	// Tokens are credentials; keep the file private. Permission bits are
	// not meaningful on Windows.
	if runtime.GOOS != "windows" {
		if err := os.Chmod(path, 0600); err != nil {
			logger.Warn("failed to set permissions on token store", "path", path, "error", err)
		}
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Current returns the newest stored token, or false when none is held.
func (s *SQLiteStore) Current() (proxymanager.Token, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t proxymanager.Token
	row := s.db.QueryRow(`SELECT token, expires FROM tokens ORDER BY id DESC LIMIT 1`)
	if err := row.Scan(&t.Token, &t.Expires); err != nil {
		if err != sql.ErrNoRows {
			s.logger.Warn("token store read failed", "error", err)
		}
		return proxymanager.Token{}, false
	}
	return t, true
}

// SetCurrent replaces the newest stored token, or inserts when the store
// is empty.
func (s *SQLiteStore) SetCurrent(t proxymanager.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		`UPDATE tokens SET token = ?, expires = ? WHERE id = (SELECT MAX(id) FROM tokens)`,
		t.Token, t.Expires,
	)
	if err != nil {
		s.logger.Warn("token store update failed", "error", err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		s.insert(t)
	}
}

// Add pushes a token onto the stack.
func (s *SQLiteStore) Add(t proxymanager.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insert(t)
}

func (s *SQLiteStore) insert(t proxymanager.Token) {
	if _, err := s.db.Exec(`INSERT INTO tokens (token, expires) VALUES (?, ?)`, t.Token, t.Expires); err != nil {
		s.logger.Warn("token store insert failed", "error", err)
	}
}

// ClearAll removes every stored token.
func (s *SQLiteStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM tokens`); err != nil {
		s.logger.Warn("token store clear failed", "error", err)
	}
}

// Size returns the number of stored tokens. Useful for testing.
func (s *SQLiteStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM tokens`).Scan(&n); err != nil {
		s.logger.Warn("token store count failed", "error", err)
		return 0
	}
	return n
}

// Compile-time interface verification.
var _ proxymanager.TokenStore = (*SQLiteStore)(nil)
