package admins

import (
	"context"
	"errors"
	"strings"

	"pet-hub/internal/ports/auth"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Login exige usuario y contraseña no vacíos. La comparación es exacta
// (sin trim ni case folding) contra lo almacenado.
func (s *Service) Login(ctx context.Context, username, password string) (Admin, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return Admin{}, ErrInvalidInput
	}
	a, err := s.repo.AuthenticateAdmin(ctx, username, password)
	if err != nil {
		return Admin{}, err
	}
	if a == nil {
		return Admin{}, ErrInvalidCredentials
	}
	return *a, nil
}

// Verify implementa auth.AdminVerifier para el middleware RequireAdmin.
func (s *Service) Verify(ctx context.Context, username, password string) (auth.Claims, error) {
	a, err := s.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return auth.Claims{}, ErrInvalidCredentials
		}
		return auth.Claims{}, err
	}
	return auth.Claims{AdminID: a.ID, Username: a.Username, Role: a.Role}, nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return s.repo.Stats(ctx)
}
