package reminders

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	added     []Fields
	lastPetID *int64
	completed map[int64]bool
}

func (r *testRepo) AddReminder(ctx context.Context, f Fields) (int64, error) {
	r.added = append(r.added, f)
	return int64(len(r.added)), nil
}

func (r *testRepo) ListReminders(ctx context.Context, petID *int64) ([]Reminder, error) {
	r.lastPetID = petID
	return []Reminder{}, nil
}

func (r *testRepo) UpdateReminderCompletion(ctx context.Context, id int64, completed bool) error {
	if r.completed == nil {
		r.completed = map[int64]bool{}
	}
	r.completed[id] = completed
	return nil
}

func TestCreate_RequiresTitleAndDate(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	for _, in := range []Fields{
		{PetID: 1, Date: "2024-01-01"},
		{PetID: 1, Title: "Pill"},
		{Title: "Pill", Date: "2024-01-01"},
	} {
		if _, err := svc.Create(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}

	if _, err := svc.Create(ctx, Fields{PetID: 1, Title: " Pill ", Date: "2024-01-01"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(repo.added) != 1 || repo.added[0].Title != "Pill" {
		t.Fatalf("expected trimmed reminder, got %+v", repo.added)
	}
}

func TestListAll_PassesNilPetID(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	if _, err := svc.ListAll(context.Background()); err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if repo.lastPetID != nil {
		t.Fatalf("expected nil pet filter, got %v", *repo.lastPetID)
	}

	if _, err := svc.ListByPet(context.Background(), 4); err != nil {
		t.Fatalf("ListByPet: %v", err)
	}
	if repo.lastPetID == nil || *repo.lastPetID != 4 {
		t.Fatalf("expected pet filter 4, got %v", repo.lastPetID)
	}
}

func TestSetCompleted(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	if err := svc.SetCompleted(context.Background(), 0, true); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := svc.SetCompleted(context.Background(), 3, true); err != nil {
		t.Fatalf("SetCompleted: %v", err)
	}
	if !repo.completed[3] {
		t.Fatalf("expected reminder 3 completed")
	}
}
