package pets

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

// Create valida y registra una mascota. Devuelve el id asignado.
func (s *Service) Create(ctx context.Context, in Fields) (int64, error) {
	f, err := normalize(in)
	if err != nil {
		return 0, err
	}
	return s.repo.AddPet(ctx, f)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.ListPets(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error) {
	if ownerID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.ListPetsByOwner(ctx, ownerID)
}

// Update reemplaza los campos mutables. Si el id no existe no pasa nada.
func (s *Service) Update(ctx context.Context, id int64, in Fields) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	f, err := normalize(in)
	if err != nil {
		return err
	}
	return s.repo.UpdatePet(ctx, id, f)
}

// Delete no borra en cascada registros médicos, turnos ni recordatorios.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.repo.DeletePet(ctx, id)
}

// normalize aplica las mismas reglas que el formulario de alta:
// nombre obligatorio, y nombre de dueño obligatorio salvo que venga owner_id.
func normalize(in Fields) (Fields, error) {
	f := in
	f.Name = strings.TrimSpace(in.Name)
	f.Breed = strings.TrimSpace(in.Breed)
	f.OwnerName = strings.TrimSpace(in.OwnerName)

	if f.Name == "" {
		return Fields{}, ErrInvalidInput
	}
	if f.OwnerName == "" && f.OwnerID == nil {
		return Fields{}, ErrInvalidInput
	}
	if f.OwnerID != nil && *f.OwnerID <= 0 {
		return Fields{}, ErrInvalidInput
	}
	if f.Age != nil && *f.Age < 0 {
		return Fields{}, ErrInvalidInput
	}
	if f.Weight != nil && *f.Weight < 0 {
		return Fields{}, ErrInvalidInput
	}
	return f, nil
}
