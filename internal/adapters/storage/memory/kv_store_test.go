package memory

import (
	"context"
	"errors"
	"testing"

	"pet-hub/internal/ports/kv"
)

func TestKVStore_GetMissing_ReturnsErrNotFound(t *testing.T) {
	s := NewKVStore()

	_, err := s.Get(context.Background(), "pets")
	if !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected kv.ErrNotFound, got %v", err)
	}
}

func TestKVStore_SetThenGet_Overwrites(t *testing.T) {
	s := NewKVStore()
	ctx := context.Background()

	if err := s.Set(ctx, "pets", "[]"); err != nil {
		t.Fatalf("Set #1: %v", err)
	}
	if err := s.Set(ctx, "pets", `[{"id":1}]`); err != nil {
		t.Fatalf("Set #2: %v", err)
	}

	got, err := s.Get(ctx, "pets")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != `[{"id":1}]` {
		t.Fatalf("expected overwritten blob, got %q", got)
	}
	if len(s.Keys()) != 1 {
		t.Fatalf("expected 1 key, got %v", s.Keys())
	}
}

func TestKVStore_Set_RejectsEmptyKey(t *testing.T) {
	s := NewKVStore()

	if err := s.Set(context.Background(), "  ", "[]"); !errors.Is(err, ErrEmptyKey) {
		t.Fatalf("expected ErrEmptyKey, got %v", err)
	}
}
