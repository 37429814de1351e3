// Package sqlite almacén local de preferencias del dashboard (SQLite embebido, sin cgo).
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Open abre la base SQLite en path y configura pragmas. path ":memory:" para tests.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir base de preferencias: %w", err)
	}
	// Una sola conexión: con ":memory:" cada conexión sería una base distinta.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("aplicar pragma %q: %w", p, err)
		}
	}
	return db, nil
}

// Migrate crea el esquema si no existe. Idempotente.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("migrar esquema de preferencias: %w", err)
	}
	return nil
}
