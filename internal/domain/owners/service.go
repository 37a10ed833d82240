package owners

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
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	}
	if f.Name == "" {
		return 0, ErrInvalidInput
	}
	return s.repo.AddOwner(ctx, f)
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.ListOwners(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.repo.DeleteOwner(ctx, id)
}
