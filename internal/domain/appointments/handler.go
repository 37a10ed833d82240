package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/appointments", func(ar chi.Router) {
		ar.Post("/", createAppointmentHandler(svc))
		ar.Get("/", listPetAppointmentsHandler(svc))
	})

	// Vista de administración: todas las mascotas
	r.Get("/appointments", listAllAppointmentsHandler(svc))
}

type createAppointmentRequest struct {
	Type        string `json:"type"`
	Date        string `json:"date"` // ISO 8601
	Time        string `json:"time"` // texto libre, ej. "10:30"
	Description string `json:"description"`
}

type createdResponse struct {
	ID int64 `json:"id"`
}

// createAppointmentHandler godoc
// @Summary Agendar turno
// @Description Crea un turno en estado `scheduled`. `type` y `date` son obligatorios.
// @Tags appointments
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body createAppointmentRequest true "Datos del turno"
// @Success 201 {object} createdResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID}/appointments [post]
func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "petID must be an integer", http.StatusBadRequest)
			return
		}

		var req createAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		id, err := svc.Create(r.Context(), Fields{
			PetID:       petID,
			Type:        req.Type,
			Date:        req.Date,
			Time:        req.Time,
			Description: req.Description,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, createdResponse{ID: id})
	}
}

// listPetAppointmentsHandler godoc
// @Summary Turnos de una mascota
// @Tags appointments
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {array} Appointment
// @Failure 400 {string} string "petID inválido"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID}/appointments [get]
func listPetAppointmentsHandler(svc *Service) http.HandlerFunc {
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

// listAllAppointmentsHandler godoc
// @Summary Todos los turnos
// @Description Turnos de todas las mascotas, por fecha descendente.
// @Tags appointments
// @Produce json
// @Success 200 {array} Appointment
// @Failure 500 {string} string "internal error"
// @Router /appointments [get]
func listAllAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
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
