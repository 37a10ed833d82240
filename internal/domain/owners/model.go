package owners

import "pet-hub/internal/platform/timestamp"

// Owner es el dueño de una o más mascotas. No se edita una vez creado.
type Owner struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Address   string         `json:"address"`
	CreatedAt timestamp.Time `json:"created_at"`
}

type Fields struct {
	Name    string
	Email   string
	Phone   string
	Address string
}
