// Package redis implementa kv.Store sobre Redis (GET/SET de strings).
// Cada colección es una key string con prefijo; el cliente lo gestiona el caller.
package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"pet-hub/internal/ports/kv"
)

const DefaultPrefix = "pethub:"

type Option func(*KVStore)

// WithPrefix cambia el prefijo de las keys (default "pethub:").
func WithPrefix(p string) Option {
	return func(s *KVStore) { s.prefix = p }
}

type KVStore struct {
	client redis.Cmdable
	prefix string
}

func NewKVStore(client redis.Cmdable, opts ...Option) *KVStore {
	s := &KVStore{client: client, prefix: DefaultPrefix}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Ping verifica que la conexión esté viva.
func (s *KVStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", kv.ErrNotFound
		}
		return "", err
	}
	return v, nil
}

func (s *KVStore) Set(ctx context.Context, key, blob string) error {
	// sin TTL: las colecciones son estado durable
	return s.client.Set(ctx, s.prefix+key, blob, 0).Err()
}
