package appointments

// Status del turno. El alta siempre asigna scheduled; completed y cancelled
// solo llegan en datos escritos por otras herramientas y se decodifican para
// que Stats los excluya de los turnos próximos.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Appointment struct {
	ID          int64  `json:"id"`
	PetID       int64  `json:"pet_id"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

type Fields struct {
	PetID       int64
	Type        string
	Date        string
	Time        string
	Description string
}
