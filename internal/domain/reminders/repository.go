package reminders

import "context"

type Repository interface {
	AddReminder(ctx context.Context, f Fields) (int64, error)
	// ListReminders con petID nil devuelve todos (vista de administración).
	ListReminders(ctx context.Context, petID *int64) ([]Reminder, error)
	// UpdateReminderCompletion es no-op silencioso si el id no existe.
	UpdateReminderCompletion(ctx context.Context, id int64, completed bool) error
}
