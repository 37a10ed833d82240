package medical

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, in Fields) (int64, error) {
	f := Fields{
		PetID:       in.PetID,
		Type:        strings.TrimSpace(in.Type),
		Description: strings.TrimSpace(in.Description),
		Date:        strings.TrimSpace(in.Date),
		VetName:     strings.TrimSpace(in.VetName),
	}
	if f.PetID <= 0 || f.Type == "" {
		return 0, ErrInvalidInput
	}
	return s.repo.AddMedicalRecord(ctx, f)
}

func (s *Service) ListByPet(ctx context.Context, petID int64) ([]Record, error) {
	if petID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.ListMedicalRecords(ctx, petID)
}
