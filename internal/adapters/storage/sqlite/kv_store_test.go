package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"pet-hub/internal/ports/kv"
)

func TestKVStore_SQLite_PersistAndReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "pethub.db")

	s, err := Open(ctx, path)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}

	if _, err := s.Get(ctx, "owners"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected kv.ErrNotFound, got %v", err)
	}
	if err := s.Set(ctx, "owners", `[{"id":1,"name":"Jo"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "owners", `[]`); err != nil {
		t.Fatalf("Set (upsert): %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Get(ctx, "owners")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got != "[]" {
		t.Fatalf("expected last written blob, got %q", got)
	}
	if reopened.Path() != path {
		t.Fatalf("expected path %s, got %s", path, reopened.Path())
	}
}

func TestKVStore_SQLite_CreatesTable(t *testing.T) {
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "pethub.db"))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	var name string
	if err := s.DB().QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name = ?", "kv").Scan(&name); err != nil {
		t.Fatalf("lookup kv table: %v", err)
	}
	if name != "kv" {
		t.Fatalf("expected kv table, got %s", name)
	}
}
