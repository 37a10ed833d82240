package owners

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	added   []Fields
	deleted []int64
}

func (r *testRepo) AddOwner(ctx context.Context, f Fields) (int64, error) {
	r.added = append(r.added, f)
	return int64(len(r.added)), nil
}

func (r *testRepo) ListOwners(ctx context.Context) ([]Owner, error) {
	return []Owner{}, nil
}

func (r *testRepo) DeleteOwner(ctx context.Context, id int64) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func TestCreate_RequiresName(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), Fields{Email: "jo@example.com"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), Fields{Name: " Jo ", Phone: " 555 "}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := repo.added[0]; got.Name != "Jo" || got.Phone != "555" {
		t.Fatalf("expected trimmed owner, got %+v", got)
	}
}

func TestDelete_RejectsNonPositiveID(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	if err := svc.Delete(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := svc.Delete(context.Background(), 8); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 8 {
		t.Fatalf("expected delete of 8, got %v", repo.deleted)
	}
}
