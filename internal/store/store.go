// Package store es el document store de Pet Hub: seis colecciones guardadas
// como arrays JSON bajo keys fijas de un sustrato clave-valor.
package store

import (
	"context"
	"errors"
	"time"

	"pet-hub/internal/domain/admins"
	"pet-hub/internal/domain/appointments"
	"pet-hub/internal/domain/medical"
	"pet-hub/internal/domain/owners"
	"pet-hub/internal/domain/pets"
	"pet-hub/internal/domain/reminders"
	"pet-hub/internal/platform/logger"
	"pet-hub/internal/platform/timestamp"
	"pet-hub/internal/ports/kv"
)

// Keys del sustrato. Son parte del formato persistido: no renombrar.
const (
	KeyPets           = "pets"
	KeyMedicalRecords = "medical_records"
	KeyAppointments   = "appointments"
	KeyReminders      = "reminders"
	KeyOwners         = "owners"
	KeyAdmins         = "admins"
)

// Cuenta sembrada en la primera inicialización.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	DefaultAdminName     = "System Administrator"
	DefaultAdminRole     = "admin"
)

// ErrCorruptCollection indica que el blob guardado no es un array JSON válido.
// Nunca se trata como colección vacía.
var ErrCorruptCollection = errors.New("corrupt collection")

// Recorder recibe una observación por operación pública del Store.
type Recorder interface {
	ObserveOperation(collection, op string, d time.Duration, err error)
}

type Option func(*Store)

func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

func WithMetrics(r Recorder) Option {
	return func(s *Store) { s.rec = r }
}

// WithClock reemplaza el reloj usado para created_at, ids y Stats.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Store es seguro para uso concurrente dentro de un proceso: cada colección
// serializa sus mutaciones (leer, modificar y escribir) con su propio lock.
// No coordina con otros procesos que compartan el sustrato.
type Store struct {
	kv  kv.Store
	log logger.Logger
	rec Recorder
	now func() time.Time
	ids *idGen

	petCol         *collection[pets.Pet]
	ownerCol       *collection[owners.Owner]
	medicalCol     *collection[medical.Record]
	appointmentCol *collection[appointments.Appointment]
	reminderCol    *collection[reminders.Reminder]
	adminCol       *collection[admins.Admin]
}

func New(substrate kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:  substrate,
		log: logger.Nop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ids = newIDGen(s.now)

	s.petCol = newCollection(s, KeyPets, func(p pets.Pet) int64 { return p.ID })
	s.ownerCol = newCollection(s, KeyOwners, func(o owners.Owner) int64 { return o.ID })
	s.medicalCol = newCollection(s, KeyMedicalRecords, func(r medical.Record) int64 { return r.ID })
	s.appointmentCol = newCollection(s, KeyAppointments, func(a appointments.Appointment) int64 { return a.ID })
	s.reminderCol = newCollection(s, KeyReminders, func(r reminders.Reminder) int64 { return r.ID })
	s.adminCol = newCollection(s, KeyAdmins, func(a admins.Admin) int64 { return a.ID })
	return s
}

// Init materializa las keys ausentes con [] y siembra el admin por defecto si
// la key de admins no existe. Es idempotente: nunca pisa datos existentes.
func (s *Store) Init(ctx context.Context) (err error) {
	defer s.observe("all", "init", time.Now(), &err)

	steps := []func() (bool, error){
		func() (bool, error) { return s.petCol.ensure(ctx) },
		func() (bool, error) { return s.medicalCol.ensure(ctx) },
		func() (bool, error) { return s.appointmentCol.ensure(ctx) },
		func() (bool, error) { return s.reminderCol.ensure(ctx) },
		func() (bool, error) { return s.ownerCol.ensure(ctx) },
	}
	for _, ensure := range steps {
		if _, err = ensure(); err != nil {
			return err
		}
	}

	seeded, err := s.adminCol.ensure(ctx, admins.Admin{
		ID:        1,
		Username:  DefaultAdminUsername,
		Password:  DefaultAdminPassword,
		Name:      DefaultAdminName,
		Role:      DefaultAdminRole,
		CreatedAt: s.stamp(),
	})
	if err != nil {
		return err
	}
	if seeded {
		s.log.Info("default admin seeded", map[string]any{"username": DefaultAdminUsername})
	}
	return nil
}

func (s *Store) stamp() timestamp.Time {
	return timestamp.From(s.now().UTC())
}

func (s *Store) observe(collection, op string, start time.Time, err *error) {
	if s.rec == nil {
		return
	}
	s.rec.ObserveOperation(collection, op, time.Since(start), *err)
}
