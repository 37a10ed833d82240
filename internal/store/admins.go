package store

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"pet-hub/internal/domain/admins"
	"pet-hub/internal/domain/appointments"
	"pet-hub/internal/domain/owners"
	"pet-hub/internal/domain/pets"
	"pet-hub/internal/domain/reminders"
)

// AuthenticateAdmin compara username y password exactos. Sin coincidencia
// devuelve nil, nil.
func (s *Store) AuthenticateAdmin(ctx context.Context, username, password string) (_ *admins.Admin, err error) {
	defer s.observe(KeyAdmins, "authenticate", time.Now(), &err)

	items, err := s.adminCol.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range items {
		if a.Username == username && a.Password == password {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

// Stats lee en paralelo las cuatro colecciones que alimentan el panel.
// Un turno es próximo si su date es posterior a ahora y sigue scheduled;
// fechas que no parsean no cuentan.
func (s *Store) Stats(ctx context.Context) (st admins.Stats, err error) {
	defer s.observe("all", "stats", time.Now(), &err)

	var (
		petItems         []pets.Pet
		ownerItems       []owners.Owner
		appointmentItems []appointments.Appointment
		reminderItems    []reminders.Reminder
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		petItems, err = s.petCol.load(gctx)
		return err
	})
	g.Go(func() (err error) {
		ownerItems, err = s.ownerCol.load(gctx)
		return err
	})
	g.Go(func() (err error) {
		appointmentItems, err = s.appointmentCol.load(gctx)
		return err
	})
	g.Go(func() (err error) {
		reminderItems, err = s.reminderCol.load(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return admins.Stats{}, err
	}

	now := s.now()
	st.TotalPets = len(petItems)
	st.TotalOwners = len(ownerItems)
	for _, a := range appointmentItems {
		if a.Status != appointments.StatusScheduled {
			continue
		}
		if t, ok := appointmentDate(a); ok && t.After(now) {
			st.UpcomingAppointments++
		}
	}
	for _, r := range reminderItems {
		if !r.IsCompleted {
			st.PendingReminders++
		}
	}
	return st, nil
}
