package appointments

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
		Date:        strings.TrimSpace(in.Date),
		Time:        strings.TrimSpace(in.Time),
		Description: strings.TrimSpace(in.Description),
	}
	if f.PetID <= 0 || f.Type == "" || f.Date == "" {
		return 0, ErrInvalidInput
	}
	return s.repo.AddAppointment(ctx, f)
}

func (s *Service) ListByPet(ctx context.Context, petID int64) ([]Appointment, error) {
	if petID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.ListAppointments(ctx, &petID)
}

func (s *Service) ListAll(ctx context.Context) ([]Appointment, error) {
	return s.repo.ListAppointments(ctx, nil)
}
