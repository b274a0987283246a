package tokenstore

import (
	"path/filepath"
	"testing"

	"go.uber.org/goleak"

	proxymanager "github.com/constanine/nginx-proxy-manager"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func openTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tokens.db")
	store, err := Open(path, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestSQLiteStoreStack(t *testing.T) {
	store, _ := openTestStore(t)

	if _, ok := store.Current(); ok {
		t.Error("empty store must report no current token")
	}

	store.Add(proxymanager.Token{Token: "first", Expires: "2026-09-01T00:00:00Z"})
	store.Add(proxymanager.Token{Token: "second"})

	current, ok := store.Current()
	if !ok || current.Token != "second" {
		t.Errorf("expected 'second' on top, got %+v ok=%v", current, ok)
	}
	if store.Size() != 2 {
		t.Errorf("expected size 2, got %d", store.Size())
	}

	store.SetCurrent(proxymanager.Token{Token: "replaced"})
	current, _ = store.Current()
	if current.Token != "replaced" {
		t.Errorf("expected 'replaced' on top, got %q", current.Token)
	}
	if store.Size() != 2 {
		t.Errorf("SetCurrent must not grow the stack, size=%d", store.Size())
	}

	store.ClearAll()
	if store.Size() != 0 {
		t.Errorf("expected empty store after ClearAll, size=%d", store.Size())
	}

	store.SetCurrent(proxymanager.Token{Token: "seed"})
	if current, ok := store.Current(); !ok || current.Token != "seed" {
		t.Errorf("SetCurrent on empty store must insert, got %+v ok=%v", current, ok)
	}
}

func TestSQLiteStorePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.db")

	store, err := Open(path, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	store.Add(proxymanager.Token{Token: "survives", Expires: "2026-09-01T00:00:00Z"})
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := Open(path, nil)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	current, ok := reopened.Current()
	if !ok || current.Token != "survives" {
		t.Errorf("expected persisted token, got %+v ok=%v", current, ok)
	}
	if current.Expires != "2026-09-01T00:00:00Z" {
		t.Errorf("expires mismatch: %q", current.Expires)
	}
}

func TestSQLiteStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tokens.db")

	store, err := Open(path, nil)
	if err != nil {
		t.Fatalf("open store with nested path: %v", err)
	}
	defer store.Close()

	store.Add(proxymanager.Token{Token: "x"})
	if store.Size() != 1 {
		t.Errorf("expected size 1, got %d", store.Size())
	}
}
