package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

// petRequest es el cuerpo de alta y de actualización. En PUT, owner_id solo
// se toca si la key viene en el cuerpo (null desvincula).
type petRequest struct {
	Name      string   `json:"name"`
	Breed     string   `json:"breed"`
	Age       *int     `json:"age"`
	Weight    *float64 `json:"weight"`
	OwnerName string   `json:"owner_name"`
	OwnerID   *int64   `json:"owner_id"`

	hasOwnerID bool
}

// decodePetRequest registra además si el cuerpo trae la key owner_id.
func decodePetRequest(r *http.Request) (petRequest, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return petRequest{}, err
	}
	var req petRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return petRequest{}, err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return petRequest{}, err
	}
	_, req.hasOwnerID = keys["owner_id"]
	return req, nil
}

func (req petRequest) fields() Fields {
	return Fields{
		Name:      req.Name,
		Breed:     req.Breed,
		Age:       req.Age,
		Weight:    req.Weight,
		OwnerName: req.OwnerName,
		OwnerID:   req.OwnerID,
		SetOwner:  req.hasOwnerID,
	}
}

type createdResponse struct {
	ID int64 `json:"id"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea una mascota. `name` es obligatorio; `owner_name` también salvo que se envíe `owner_id`. Edad y peso son opcionales y no negativos.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} createdResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 500 {string} string "internal error"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodePetRequest(r)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		id, err := svc.Create(r.Context(), req.fields())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, createdResponse{ID: id})
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Lista todas las mascotas, de la más reciente a la más antigua. Con `owner_id` filtra por dueño vinculado.
// @Tags pets
// @Produce json
// @Param owner_id query int false "ID del dueño"
// @Success 200 {array} Pet
// @Failure 400 {string} string "owner_id inválido"
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []Pet
			err   error
		)
		if raw := r.URL.Query().Get("owner_id"); raw != "" {
			ownerID, perr := strconv.ParseInt(raw, 10, 64)
			if perr != nil {
				http.Error(w, "owner_id must be an integer", http.StatusBadRequest)
				return
			}
			items, err = svc.ListByOwner(r.Context(), ownerID)
		} else {
			items, err = svc.List(r.Context())
		}
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Reemplaza los campos editables. `owner_id` solo cambia si viene en el cuerpo; `null` desvincula. Si el id no existe no hace nada y responde igual 204.
// @Tags pets
// @Accept json
// @Param petID path int true "ID de la mascota"
// @Param payload body petRequest true "Datos completos de la mascota"
// @Success 204
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "petID")
		if err != nil {
			http.Error(w, "petID must be an integer", http.StatusBadRequest)
			return
		}

		req, err := decodePetRequest(r)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.Update(r.Context(), id, req.fields()); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra la mascota. Registros médicos, turnos y recordatorios quedan intactos. Idempotente.
// @Tags pets
// @Param petID path int true "ID de la mascota"
// @Success 204
// @Failure 400 {string} string "petID inválido"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "petID")
		if err != nil {
			http.Error(w, "petID must be an integer", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// writeJSON está duplicado en los handlers de cada módulo; todavía no vale un
// paquete compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
