package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pet-hub/internal/ports/kv"

	_ "modernc.org/sqlite" // driver sqlite en Go puro
)

const DefaultPath = "pethub.db"

// KVStore persiste cada colección como una fila (key, value) de la tabla kv.
// Pensado para instalaciones de un solo proceso (equivalente al storage on-device).
type KVStore struct {
	db   *sql.DB
	path string
}

// Open abre (o crea) la base en path y asegura la tabla.
func Open(ctx context.Context, path string) (*KVStore, error) {
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite serializa escrituras; un solo conn evita SQLITE_BUSY entre goroutines.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &KVStore{db: db, path: path}, nil
}

func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", kv.ErrNotFound
		}
		return "", err
	}
	return v, nil
}

func (s *KVStore) Set(ctx context.Context, key, blob string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO kv(key, value) VALUES(?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')`, key, blob)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// DB expone el *sql.DB (tests).
func (s *KVStore) DB() *sql.DB { return s.db }

// Path devuelve la ruta configurada.
func (s *KVStore) Path() string { return s.path }

func (s *KVStore) Close() error { return s.db.Close() }
