package admins

import "context"

type Repository interface {
	// AuthenticateAdmin devuelve nil (sin error) si no hay coincidencia exacta.
	AuthenticateAdmin(ctx context.Context, username, password string) (*Admin, error)
	Stats(ctx context.Context) (Stats, error)
}
