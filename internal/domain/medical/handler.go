package medical

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/medical-records", func(mr chi.Router) {
		mr.Post("/", createRecordHandler(svc))
		mr.Get("/", listRecordsHandler(svc))
	})
}

// createRecordRequest es el cuerpo para registrar una entrada de historia clínica.
type createRecordRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"` // ISO 8601
	VetName     string `json:"vet_name"`
}

type createdResponse struct {
	ID int64 `json:"id"`
}

// createRecordHandler godoc
// @Summary Agregar registro médico
// @Description Agrega una entrada a la historia clínica de la mascota. `type` es obligatorio. No valida que la mascota exista.
// @Tags medical-records
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body createRecordRequest true "Datos del registro"
// @Success 201 {object} createdResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID}/medical-records [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "petID must be an integer", http.StatusBadRequest)
			return
		}

		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		id, err := svc.Create(r.Context(), Fields{
			PetID:       petID,
			Type:        req.Type,
			Description: req.Description,
			Date:        req.Date,
			VetName:     req.VetName,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, createdResponse{ID: id})
	}
}

// listRecordsHandler godoc
// @Summary Historia clínica de una mascota
// @Description Registros de la mascota ordenados por fecha descendente; fechas inválidas al final.
// @Tags medical-records
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {array} Record
// @Failure 400 {string} string "petID inválido"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID}/medical-records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "petID must be an integer", http.StatusBadRequest)
			return
		}

		items, err := svc.ListByPet(r.Context(), petID)
		if err != nil {
			writeError(w, err)
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
