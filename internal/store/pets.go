package store

import (
	"context"
	"time"

	"pet-hub/internal/domain/pets"
)

func petCreatedAt(p pets.Pet) (time.Time, bool) { return createdAt(p.CreatedAt) }

func (s *Store) AddPet(ctx context.Context, f pets.Fields) (id int64, err error) {
	defer s.observe(KeyPets, "add", time.Now(), &err)

	return add(ctx, s.petCol, func(id int64) pets.Pet {
		return pets.New(id, s.stamp(), f)
	})
}

func (s *Store) ListPets(ctx context.Context) (out []pets.Pet, err error) {
	defer s.observe(KeyPets, "list", time.Now(), &err)

	return list(ctx, s.petCol, nil, petCreatedAt)
}

// ListPetsByOwner solo mira owner_id; owner_name no participa del filtro.
func (s *Store) ListPetsByOwner(ctx context.Context, ownerID int64) (out []pets.Pet, err error) {
	defer s.observe(KeyPets, "list_by_owner", time.Now(), &err)

	return list(ctx, s.petCol, func(p pets.Pet) bool { return p.BelongsTo(ownerID) }, petCreatedAt)
}

// UpdatePet reemplaza los campos mutables; owner_id solo con f.SetOwner.
// Id ausente: no-op sin error.
func (s *Store) UpdatePet(ctx context.Context, id int64, f pets.Fields) (err error) {
	defer s.observe(KeyPets, "update", time.Now(), &err)

	return s.petCol.mutate(ctx, func(items []pets.Pet) ([]pets.Pet, bool) {
		changed := false
		for i := range items {
			if items[i].ID == id {
				items[i] = items[i].Apply(f)
				changed = true
			}
		}
		return items, changed
	})
}

// DeletePet no toca registros médicos, turnos ni recordatorios de la mascota.
func (s *Store) DeletePet(ctx context.Context, id int64) (err error) {
	defer s.observe(KeyPets, "delete", time.Now(), &err)

	return s.petCol.mutate(ctx, func(items []pets.Pet) ([]pets.Pet, bool) {
		return removeID(items, id, func(p pets.Pet) int64 { return p.ID })
	})
}

// removeID filtra todos los registros con ese id; informa si quitó alguno.
func removeID[T any](items []T, id int64, idOf func(T) int64) ([]T, bool) {
	out := items[:0]
	for _, it := range items {
		if idOf(it) != id {
			out = append(out, it)
		}
	}
	return out, len(out) != len(items)
}
