package owners

import "context"

type Repository interface {
	AddOwner(ctx context.Context, f Fields) (int64, error)
	ListOwners(ctx context.Context) ([]Owner, error)
	// DeleteOwner no toca las mascotas vinculadas.
	DeleteOwner(ctx context.Context, id int64) error
}
