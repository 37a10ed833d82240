package pets

import "pet-hub/internal/platform/timestamp"

// Pet representa una mascota registrada.
//
// OwnerName es texto libre (legado, siempre presente); OwnerID es el vínculo
// normalizado a un Owner y puede faltar. No hay integridad referencial:
// si el owner se borra, la mascota queda huérfana pero intacta.
type Pet struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Breed     string         `json:"breed"`
	Age       *int           `json:"age"`
	Weight    *float64       `json:"weight"`
	OwnerName string         `json:"owner_name"`
	OwnerID   *int64         `json:"owner_id,omitempty"`
	CreatedAt timestamp.Time `json:"created_at"`
}

// Fields son los campos mutables de una mascota (todo excepto id y created_at).
//
// SetOwner controla owner_id: en false Apply conserva el vínculo actual.
type Fields struct {
	Name      string
	Breed     string
	Age       *int
	Weight    *float64
	OwnerName string
	OwnerID   *int64
	SetOwner  bool
}

// Apply reemplaza los campos mutables, preservando ID y CreatedAt.
// OwnerID solo cambia con SetOwner.
func (p Pet) Apply(f Fields) Pet {
	p.Name = f.Name
	p.Breed = f.Breed
	p.Age = f.Age
	p.Weight = f.Weight
	p.OwnerName = f.OwnerName
	if f.SetOwner {
		p.OwnerID = f.OwnerID
	}
	return p
}

// New arma una mascota nueva; el alta siempre toma owner_id de f.
func New(id int64, createdAt timestamp.Time, f Fields) Pet {
	f.SetOwner = true
	return Pet{ID: id, CreatedAt: createdAt}.Apply(f)
}

// BelongsTo indica si la mascota está vinculada al owner dado.
func (p Pet) BelongsTo(ownerID int64) bool {
	return p.OwnerID != nil && *p.OwnerID == ownerID
}
