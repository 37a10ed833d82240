package owners

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pet-hub/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/owners", func(ow chi.Router) {
		ow.Post("/", createOwnerHandler(svc))
		ow.Get("/", listOwnersHandler(svc))
		ow.Delete("/{ownerID}", deleteOwnerHandler(svc))

		// Mascotas vinculadas por owner_id
		ow.Get("/{ownerID}/pets", listOwnerPetsHandler(petsSvc))
	})
}

type createOwnerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type createdResponse struct {
	ID int64 `json:"id"`
}

// createOwnerHandler godoc
// @Summary Registrar dueño
// @Description Crea un dueño. Solo `name` es obligatorio.
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body createOwnerRequest true "Datos del dueño"
// @Success 201 {object} createdResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 500 {string} string "internal error"
// @Router /owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		id, err := svc.Create(r.Context(), Fields{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, createdResponse{ID: id})
	}
}

// listOwnersHandler godoc
// @Summary Listar dueños
// @Tags owners
// @Produce json
// @Success 200 {array} Owner
// @Failure 500 {string} string "internal error"
// @Router /owners [get]
func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// deleteOwnerHandler godoc
// @Summary Borrar dueño
// @Description Borra el dueño sin tocar sus mascotas (quedan huérfanas). Idempotente.
// @Tags owners
// @Param ownerID path int true "ID del dueño"
// @Success 204
// @Failure 400 {string} string "ownerID inválido"
// @Failure 500 {string} string "internal error"
// @Router /owners/{ownerID} [delete]
func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "ownerID"), 10, 64)
		if err != nil {
			http.Error(w, "ownerID must be an integer", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// listOwnerPetsHandler godoc
// @Summary Mascotas de un dueño
// @Description Mascotas cuyo owner_id coincide, de la más reciente a la más antigua. No verifica que el dueño exista.
// @Tags owners
// @Produce json
// @Param ownerID path int true "ID del dueño"
// @Success 200 {array} pets.Pet
// @Failure 400 {string} string "ownerID inválido"
// @Failure 500 {string} string "internal error"
// @Router /owners/{ownerID}/pets [get]
func listOwnerPetsHandler(petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "ownerID"), 10, 64)
		if err != nil {
			http.Error(w, "ownerID must be an integer", http.StatusBadRequest)
			return
		}

		items, err := petsSvc.ListByOwner(r.Context(), id)
		if err != nil {
			if errors.Is(err, pets.ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
