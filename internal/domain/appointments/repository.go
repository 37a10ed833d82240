package appointments

import "context"

type Repository interface {
	AddAppointment(ctx context.Context, f Fields) (int64, error)
	// ListAppointments con petID nil devuelve todos (vista de administración).
	ListAppointments(ctx context.Context, petID *int64) ([]Appointment, error)
}
