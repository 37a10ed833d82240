package reminders

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/reminders", func(rr chi.Router) {
		rr.Post("/", createReminderHandler(svc))
		rr.Get("/", listPetRemindersHandler(svc))
	})

	r.Route("/reminders", func(rr chi.Router) {
		rr.Get("/", listAllRemindersHandler(svc))
		rr.Put("/{reminderID}/completion", setCompletionHandler(svc))
	})
}

type createReminderRequest struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // ISO 8601
}

type completionRequest struct {
	IsCompleted *bool `json:"is_completed"`
}

type createdResponse struct {
	ID int64 `json:"id"`
}

// createReminderHandler godoc
// @Summary Crear recordatorio
// @Description Crea un recordatorio pendiente. `title` y `date` son obligatorios.
// @Tags reminders
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body createReminderRequest true "Datos del recordatorio"
// @Success 201 {object} createdResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID}/reminders [post]
func createReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "petID must be an integer", http.StatusBadRequest)
			return
		}

		var req createReminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		id, err := svc.Create(r.Context(), Fields{
			PetID:       petID,
			Type:        req.Type,
			Title:       req.Title,
			Description: req.Description,
			Date:        req.Date,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, createdResponse{ID: id})
	}
}

// listPetRemindersHandler godoc
// @Summary Recordatorios de una mascota
// @Tags reminders
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {array} Reminder
// @Failure 400 {string} string "petID inválido"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID}/reminders [get]
func listPetRemindersHandler(svc *Service) http.HandlerFunc {
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

// listAllRemindersHandler godoc
// @Summary Todos los recordatorios
// @Tags reminders
// @Produce json
// @Success 200 {array} Reminder
// @Failure 500 {string} string "internal error"
// @Router /reminders [get]
func listAllRemindersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// setCompletionHandler godoc
// @Summary Marcar recordatorio
// @Description Marca o desmarca el recordatorio como completado. Si el id no existe responde igual 204.
// @Tags reminders
// @Accept json
// @Param reminderID path int true "ID del recordatorio"
// @Param payload body completionRequest true "Nuevo estado"
// @Success 204
// @Failure 400 {string} string "invalid json / is_completed requerido"
// @Failure 500 {string} string "internal error"
// @Router /reminders/{reminderID}/completion [put]
func setCompletionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "reminderID"), 10, 64)
		if err != nil {
			http.Error(w, "reminderID must be an integer", http.StatusBadRequest)
			return
		}

		var req completionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.IsCompleted == nil {
			http.Error(w, "is_completed is required", http.StatusBadRequest)
			return
		}

		if err := svc.SetCompleted(r.Context(), id, *req.IsCompleted); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
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
