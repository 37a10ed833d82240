package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"pet-hub/internal/ports/kv"
)

const DefaultRoot = "./pethub-data"

// KVStore guarda cada key como un archivo "<root>/<key>.json".
// Las escrituras van a un temp y luego rename, así un lector nunca ve un blob a medias.
type KVStore struct {
	root string
}

func New(root string) (*KVStore, error) {
	if root == "" {
		root = DefaultRoot
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &KVStore{root: root}, nil
}

// Root devuelve el directorio base.
func (s *KVStore) Root() string { return s.root }

// las keys son nombres planos (pets, owners, ...): sin separadores ni traversal
func (s *KVStore) pathFor(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("empty key")
	}
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.root, key+".json"), nil
}

func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	p, err := s.pathFor(key)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", kv.ErrNotFound
		}
		return "", err
	}
	return string(b), nil
}

func (s *KVStore) Set(ctx context.Context, key, blob string) error {
	p, err := s.pathFor(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.root, ".tmp-"+key+"-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.WriteString(blob); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p)
}
