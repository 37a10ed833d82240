package store

import (
	"context"
	"time"

	"pet-hub/internal/domain/owners"
)

func (s *Store) AddOwner(ctx context.Context, f owners.Fields) (id int64, err error) {
	defer s.observe(KeyOwners, "add", time.Now(), &err)

	return add(ctx, s.ownerCol, func(id int64) owners.Owner {
		return owners.Owner{
			ID:        id,
			Name:      f.Name,
			Email:     f.Email,
			Phone:     f.Phone,
			Address:   f.Address,
			CreatedAt: s.stamp(),
		}
	})
}

func (s *Store) ListOwners(ctx context.Context) (out []owners.Owner, err error) {
	defer s.observe(KeyOwners, "list", time.Now(), &err)

	return list(ctx, s.ownerCol, nil, func(o owners.Owner) (time.Time, bool) { return createdAt(o.CreatedAt) })
}

// DeleteOwner deja intactas las mascotas que lo referencian.
func (s *Store) DeleteOwner(ctx context.Context, id int64) (err error) {
	defer s.observe(KeyOwners, "delete", time.Now(), &err)

	return s.ownerCol.mutate(ctx, func(items []owners.Owner) ([]owners.Owner, bool) {
		return removeID(items, id, func(o owners.Owner) int64 { return o.ID })
	})
}
