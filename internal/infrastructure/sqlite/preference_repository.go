package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/neowarehouse/internal/domain/repository"
)

var _ repository.PreferenceRepository = (*PreferenceRepository)(nil)

// PreferenceRepository implementa repository.PreferenceRepository sobre la tabla settings.
type PreferenceRepository struct {
	db *sql.DB
}

// NewPreferenceRepository construye el repositorio.
func NewPreferenceRepository(db *sql.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Get lee una preferencia; ok=false si no existe.
func (r *PreferenceRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("leer preferencia %q: %w", key, err)
	}
	return value, true, nil
}

// Set guarda (o reemplaza) una preferencia.
func (r *PreferenceRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("guardar preferencia %q: %w", key, err)
	}
	return nil
}
