package store

import (
	"context"
	"time"

	"pet-hub/internal/domain/medical"
)

func (s *Store) AddMedicalRecord(ctx context.Context, f medical.Fields) (id int64, err error) {
	defer s.observe(KeyMedicalRecords, "add", time.Now(), &err)

	return add(ctx, s.medicalCol, func(id int64) medical.Record {
		return medical.Record{
			ID:          id,
			PetID:       f.PetID,
			Type:        f.Type,
			Description: f.Description,
			Date:        f.Date,
			VetName:     f.VetName,
		}
	})
}

func (s *Store) ListMedicalRecords(ctx context.Context, petID int64) (out []medical.Record, err error) {
	defer s.observe(KeyMedicalRecords, "list", time.Now(), &err)

	return list(ctx, s.medicalCol,
		func(r medical.Record) bool { return r.PetID == petID },
		func(r medical.Record) (time.Time, bool) { return parseDate(r.Date) },
	)
}
