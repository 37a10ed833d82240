package store

import (
	"context"
	"time"

	"pet-hub/internal/domain/reminders"
)

func (s *Store) AddReminder(ctx context.Context, f reminders.Fields) (id int64, err error) {
	defer s.observe(KeyReminders, "add", time.Now(), &err)

	return add(ctx, s.reminderCol, func(id int64) reminders.Reminder {
		return reminders.Reminder{
			ID:          id,
			PetID:       f.PetID,
			Type:        f.Type,
			Title:       f.Title,
			Description: f.Description,
			Date:        f.Date,
		}
	})
}

// ListReminders filtra por mascota solo si petID != nil.
func (s *Store) ListReminders(ctx context.Context, petID *int64) (out []reminders.Reminder, err error) {
	defer s.observe(KeyReminders, "list", time.Now(), &err)

	var keep func(reminders.Reminder) bool
	if petID != nil {
		id := *petID
		keep = func(r reminders.Reminder) bool { return r.PetID == id }
	}
	return list(ctx, s.reminderCol, keep, func(r reminders.Reminder) (time.Time, bool) { return parseDate(r.Date) })
}

// UpdateReminderCompletion es no-op si el id no existe o ya tiene ese valor.
func (s *Store) UpdateReminderCompletion(ctx context.Context, id int64, completed bool) (err error) {
	defer s.observe(KeyReminders, "update_completion", time.Now(), &err)

	return s.reminderCol.mutate(ctx, func(items []reminders.Reminder) ([]reminders.Reminder, bool) {
		changed := false
		for i := range items {
			if items[i].ID == id && items[i].IsCompleted != completed {
				items[i].IsCompleted = completed
				changed = true
			}
		}
		return items, changed
	})
}
