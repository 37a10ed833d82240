package middleware

import (
	"context"
	"net/http"

	"pet-hub/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// RequireAdmin exige credenciales HTTP Basic de administrador.
// - Sin header o credenciales inválidas => 401 con WWW-Authenticate.
// - Error del verifier distinto de credenciales => 500.
// Los handlers leen las claims con GetClaims.
func RequireAdmin(verifier auth.AdminVerifier, isInvalid func(error) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || verifier == nil {
				unauthorized(w)
				return
			}

			claims, err := verifier.Verify(r.Context(), user, pass)
			if err != nil {
				if isInvalid != nil && isInvalid(err) {
					unauthorized(w)
					return
				}
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="pet-hub admin"`)
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}
