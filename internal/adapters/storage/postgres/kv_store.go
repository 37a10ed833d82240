package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-hub/internal/ports/kv"
)

// KVStore guarda cada colección como una fila (key, value) en la tabla kv_store.
// value es TEXT y no JSONB: el blob se devuelve byte a byte como se escribió.
type KVStore struct {
	db *sql.DB
}

func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// Migrate crea la tabla si no existe. Idempotente.
func (s *KVStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure kv_store table: %w", err)
	}
	return nil
}

func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", kv.ErrNotFound
		}
		return "", err
	}
	return v, nil
}

func (s *KVStore) Set(ctx context.Context, key, blob string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    updated_at = EXCLUDED.updated_at
	`, key, blob)
	return err
}

// DB expone el *sql.DB (tests de integración).
func (s *KVStore) DB() *sql.DB { return s.db }

func (s *KVStore) Close() error { return s.db.Close() }
