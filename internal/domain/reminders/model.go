package reminders

type Reminder struct {
	ID          int64  `json:"id"`
	PetID       int64  `json:"pet_id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	IsCompleted bool   `json:"is_completed"`
}

type Fields struct {
	PetID       int64
	Type        string
	Title       string
	Description string
	Date        string
}
