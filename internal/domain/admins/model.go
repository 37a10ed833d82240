package admins

import "pet-hub/internal/platform/timestamp"

// Admin es un operador con acceso al panel. Password se guarda en texto plano
// (formato heredado del almacenamiento); nunca se devuelve por HTTP.
type Admin struct {
	ID        int64          `json:"id"`
	Username  string         `json:"username"`
	Password  string         `json:"password"`
	Name      string         `json:"name"`
	Role      string         `json:"role"`
	CreatedAt timestamp.Time `json:"created_at"`
}

// Stats son los contadores del panel de administración.
type Stats struct {
	TotalPets            int `json:"total_pets"`
	TotalOwners          int `json:"total_owners"`
	UpcomingAppointments int `json:"upcoming_appointments"`
	PendingReminders     int `json:"pending_reminders"`
}
