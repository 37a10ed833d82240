package storage

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"pet-hub/internal/adapters/storage/fs"
	"pet-hub/internal/adapters/storage/memory"
	"pet-hub/internal/platform/config"
	"pet-hub/internal/ports/kv"
)

func roundTrip(t *testing.T, s kv.Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "owners"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected kv.ErrNotFound, got %v", err)
	}
	if err := s.Set(ctx, "owners", `[{"id":1,"name":"Jo"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, "owners")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != `[{"id":1,"name":"Jo"}]` {
		t.Fatalf("unexpected blob %q", got)
	}
}

func TestOpen_DefaultsToMemory(t *testing.T) {
	s, closeFn, err := Open(context.Background(), config.Storage{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer closeFn()

	if _, ok := s.(*memory.KVStore); !ok {
		t.Fatalf("expected *memory.KVStore, got %T", s)
	}
	roundTrip(t, s)
}

func TestOpen_FS(t *testing.T) {
	dir := t.TempDir()
	s, closeFn, err := Open(context.Background(), config.Storage{Driver: config.DriverFS, Dir: dir})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer closeFn()

	fsStore, ok := s.(*fs.KVStore)
	if !ok {
		t.Fatalf("expected *fs.KVStore, got %T", s)
	}
	if fsStore.Root() != dir {
		t.Fatalf("expected root %s, got %s", dir, fsStore.Root())
	}
	roundTrip(t, s)
}

func TestOpen_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	s, closeFn, err := Open(context.Background(), config.Storage{Driver: config.DriverSQLite, SQLitePath: path})
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	defer closeFn()

	roundTrip(t, s)
}

func TestOpen_RejectsInvalidConfig(t *testing.T) {
	cases := []config.Storage{
		{Driver: config.DriverPostgres},
		{Driver: config.DriverS3},
		{Driver: config.DriverRemote},
		{Driver: "cassandra"},
	}
	for _, cfg := range cases {
		if _, _, err := Open(context.Background(), cfg); err == nil {
			t.Fatalf("expected error for %+v", cfg)
		} else if !strings.Contains(err.Error(), "required") && !strings.Contains(err.Error(), "unknown") {
			t.Fatalf("unexpected error for %+v: %v", cfg, err)
		}
	}
}
