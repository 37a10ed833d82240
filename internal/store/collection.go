package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"pet-hub/internal/ports/kv"
)

// collection es un array JSON bajo una key. El mutex serializa mutate/ensure;
// las lecturas no lo toman porque el sustrato escribe cada blob completo.
type collection[T any] struct {
	store *Store
	key   string
	id    func(T) int64

	mu sync.Mutex
}

func newCollection[T any](s *Store, key string, id func(T) int64) *collection[T] {
	return &collection[T]{store: s, key: key, id: id}
}

// load trata key ausente, blob vacío y "null" como colección vacía.
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	blob, err := c.store.kv.Get(ctx, c.key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(blob) == "" {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		c.store.log.Warn("corrupt collection", map[string]any{"collection": c.key, "error": err})
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptCollection, c.key, err)
	}
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	return c.store.kv.Set(ctx, c.key, string(b))
}

// mutate carga, aplica fn y persiste la colección completa bajo el lock.
// Si fn informa que no hubo cambios no se escribe.
func (c *collection[T]) mutate(ctx context.Context, fn func([]T) ([]T, bool)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	next, changed := fn(items)
	if !changed {
		return nil
	}
	if err := c.save(ctx, next); err != nil {
		return err
	}
	c.store.log.Debug("collection saved", map[string]any{"collection": c.key, "size": len(next)})
	return nil
}

// ensure escribe seed (o []) si la key no existe o tiene un blob vacío.
// Devuelve true si escribió.
func (c *collection[T]) ensure(ctx context.Context, seed ...T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	blob, err := c.store.kv.Get(ctx, c.key)
	switch {
	case err == nil && strings.TrimSpace(blob) != "":
		return false, nil
	case err != nil && !errors.Is(err, kv.ErrNotFound):
		return false, err
	}
	if err := c.save(ctx, seed); err != nil {
		return false, err
	}
	return true, nil
}

func (c *collection[T]) maxID(items []T) int64 {
	var hi int64
	for _, it := range items {
		if id := c.id(it); id > hi {
			hi = id
		}
	}
	return hi
}

// add asigna id y persiste el registro construido por build.
func add[T any](ctx context.Context, c *collection[T], build func(id int64) T) (int64, error) {
	var id int64
	err := c.mutate(ctx, func(items []T) ([]T, bool) {
		id = c.store.ids.next(c.maxID(items))
		return append(items, build(id)), true
	})
	if err != nil {
		return 0, err
	}
	c.store.log.Debug("record added", map[string]any{"collection": c.key, "id": id})
	return id, nil
}

// list filtra (keep nil = todos) y ordena descendente por ts.
func list[T any](ctx context.Context, c *collection[T], keep func(T) bool, ts func(T) (time.Time, bool)) ([]T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep == nil || keep(it) {
			out = append(out, it)
		}
	}
	sortNewestFirst(out, ts, c.id)
	return out, nil
}
