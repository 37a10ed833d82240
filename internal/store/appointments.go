package store

import (
	"context"
	"time"

	"pet-hub/internal/domain/appointments"
)

// AddAppointment siempre crea el turno en estado scheduled.
func (s *Store) AddAppointment(ctx context.Context, f appointments.Fields) (id int64, err error) {
	defer s.observe(KeyAppointments, "add", time.Now(), &err)

	return add(ctx, s.appointmentCol, func(id int64) appointments.Appointment {
		return appointments.Appointment{
			ID:          id,
			PetID:       f.PetID,
			Type:        f.Type,
			Date:        f.Date,
			Time:        f.Time,
			Description: f.Description,
			Status:      appointments.StatusScheduled,
		}
	})
}

// ListAppointments filtra por mascota solo si petID != nil.
func (s *Store) ListAppointments(ctx context.Context, petID *int64) (out []appointments.Appointment, err error) {
	defer s.observe(KeyAppointments, "list", time.Now(), &err)

	var keep func(appointments.Appointment) bool
	if petID != nil {
		id := *petID
		keep = func(a appointments.Appointment) bool { return a.PetID == id }
	}
	return list(ctx, s.appointmentCol, keep, appointmentDate)
}

func appointmentDate(a appointments.Appointment) (time.Time, bool) { return parseDate(a.Date) }
