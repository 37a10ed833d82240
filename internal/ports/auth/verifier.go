package auth

import "context"

// AdminVerifier valida credenciales de administrador y devuelve claims o error.
type AdminVerifier interface {
	Verify(ctx context.Context, username, password string) (Claims, error)
}
