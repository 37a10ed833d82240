package medical

// Record es una entrada de historia clínica. Pertenece a una mascota y no se
// edita ni borra una vez creada.
//
// Date se guarda tal como llega (ISO 8601 en la práctica); si no parsea, el
// registro se ordena al final.
type Record struct {
	ID          int64  `json:"id"`
	PetID       int64  `json:"pet_id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
	VetName     string `json:"vet_name"`
}

type Fields struct {
	PetID       int64
	Type        string
	Description string
	Date        string
	VetName     string
}
