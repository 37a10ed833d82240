package redis

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"

	"pet-hub/internal/ports/kv"
)

// Requiere un Redis real: PETHUB_TEST_REDIS_ADDR=localhost:6379
func TestKVStore_Redis_RoundTrip(t *testing.T) {
	addr := os.Getenv("PETHUB_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("PETHUB_TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	prefix := "pethub_test:" + t.Name() + ":"
	s := NewKVStore(client, WithPrefix(prefix))

	if err := s.Ping(ctx); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	t.Cleanup(func() { client.Del(context.Background(), prefix+"reminders") })

	if _, err := s.Get(ctx, "reminders"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected kv.ErrNotFound, got %v", err)
	}
	if err := s.Set(ctx, "reminders", `[{"id":7,"is_completed":false}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := s.Get(ctx, "reminders")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != `[{"id":7,"is_completed":false}]` {
		t.Fatalf("unexpected blob %q", got)
	}

	// la key real lleva el prefijo
	raw, err := client.Get(ctx, prefix+"reminders").Result()
	if err != nil || raw != got {
		t.Fatalf("expected prefixed key to hold blob, got %q err=%v", raw, err)
	}
}
