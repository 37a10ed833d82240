package reminders

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
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Date:        strings.TrimSpace(in.Date),
	}
	if f.PetID <= 0 || f.Title == "" || f.Date == "" {
		return 0, ErrInvalidInput
	}
	return s.repo.AddReminder(ctx, f)
}

func (s *Service) ListByPet(ctx context.Context, petID int64) ([]Reminder, error) {
	if petID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.ListReminders(ctx, &petID)
}

func (s *Service) ListAll(ctx context.Context) ([]Reminder, error) {
	return s.repo.ListReminders(ctx, nil)
}

// SetCompleted marca/desmarca el recordatorio.
func (s *Service) SetCompleted(ctx context.Context, id int64, completed bool) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.repo.UpdateReminderCompletion(ctx, id, completed)
}
