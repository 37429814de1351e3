package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T, path string) *PreferenceRepository {
	t.Helper()
	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Migrate(db))
	return NewPreferenceRepository(db)
}

func TestPreferenceRepository_GetInexistente(t *testing.T) {
	repo := openTestDB(t, ":memory:")

	v, ok, err := repo.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestPreferenceRepository_SetSobrescribe(t *testing.T) {
	repo := openTestDB(t, ":memory:")
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "theme", "dark"))
	require.NoError(t, repo.Set(ctx, "theme", "light"))

	v, ok, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestPreferenceRepository_PersisteEntreAperturas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	require.NoError(t, NewPreferenceRepository(db).Set(ctx, "theme", "dark"))
	require.NoError(t, db.Close())

	repo := openTestDB(t, path)
	v, ok, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestMigrate_Idempotente(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}
