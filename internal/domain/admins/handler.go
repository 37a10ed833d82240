package admins

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-hub/internal/middleware"
	"pet-hub/internal/platform/timestamp"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/admin", func(ar chi.Router) {
		ar.Post("/login", loginHandler(svc))

		ar.Group(func(pr chi.Router) {
			pr.Use(middleware.RequireAdmin(svc, IsInvalidCredentials))
			pr.Get("/stats", statsHandler(svc))
		})
	})
}

// IsInvalidCredentials distingue credenciales rechazadas de fallas del store.
func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// adminResponse nunca incluye la contraseña.
type adminResponse struct {
	ID        int64          `json:"id"`
	Username  string         `json:"username"`
	Name      string         `json:"name"`
	Role      string         `json:"role"`
	CreatedAt timestamp.Time `json:"created_at"`
}

// loginHandler godoc
// @Summary Login de administrador
// @Description Verifica usuario y contraseña (comparación exacta) y devuelve el administrador sin la contraseña.
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} adminResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "invalid credentials"
// @Failure 500 {string} string "internal error"
// @Router /admin/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrInvalidCredentials):
				http.Error(w, err.Error(), http.StatusUnauthorized)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, adminResponse{
			ID:        a.ID,
			Username:  a.Username,
			Name:      a.Name,
			Role:      a.Role,
			CreatedAt: a.CreatedAt,
		})
	}
}

// statsHandler godoc
// @Summary Estadísticas del panel
// @Description Total de mascotas y dueños, turnos próximos (fecha futura y `scheduled`) y recordatorios pendientes. Requiere HTTP Basic de administrador.
// @Tags admin
// @Produce json
// @Security BasicAuth
// @Success 200 {object} Stats
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /admin/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		st, err := svc.Stats(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
