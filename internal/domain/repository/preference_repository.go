package repository

import "context"

// PreferenceRepository almacén local clave/valor de preferencias del cliente.
// Get devuelve ok=false si la clave no existe.
type PreferenceRepository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
