package kv

import (
	"context"
	"errors"
)

// ErrNotFound indica que la key no existe en el sustrato.
// El Store lo trata igual que un array vacío.
var ErrNotFound = errors.New("kv: key not found")

// Store es el sustrato de persistencia clave-valor sobre el que vive el document store.
// Un valor es un blob de texto (JSON en la práctica); Set sobreescribe siempre.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, blob string) error
}
