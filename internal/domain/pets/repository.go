package pets

import "context"

type Repository interface {
	AddPet(ctx context.Context, f Fields) (int64, error)
	ListPets(ctx context.Context) ([]Pet, error)
	ListPetsByOwner(ctx context.Context, ownerID int64) ([]Pet, error)
	// UpdatePet y DeletePet son no-op silenciosos si el id no existe.
	UpdatePet(ctx context.Context, id int64, f Fields) error
	DeletePet(ctx context.Context, id int64) error
}
