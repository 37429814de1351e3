package controller_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/neowarehouse/internal/application/controller"
	"github.com/jhoicas/neowarehouse/internal/domain"
	"github.com/jhoicas/neowarehouse/internal/domain/entity"
	"github.com/jhoicas/neowarehouse/internal/infrastructure/sqlite"
)

// memPrefs almacén de preferencias en memoria con fallos inyectables.
type memPrefs struct {
	mu      sync.Mutex
	values  map[string]string
	getErr  error
	setErr  error
	setCall int
}

func newMemPrefs() *memPrefs { return &memPrefs{values: map[string]string{}} }

func (m *memPrefs) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memPrefs) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCall++
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func TestTheme_SinGuardadoUsaEntorno(t *testing.T) {
	ctx := context.Background()

	svc := controller.NewThemeService(ctx, newMemPrefs(), entity.ThemeDark, zerolog.Nop())
	assert.Equal(t, entity.ThemeDark, svc.Current())

	svc = controller.NewThemeService(ctx, newMemPrefs(), "sepia", zerolog.Nop())
	assert.Equal(t, entity.ThemeLight, svc.Current(), "preferencia inválida cae a claro")
}

func TestTheme_GuardadoTienePrioridad(t *testing.T) {
	prefs := newMemPrefs()
	prefs.values[controller.ThemeKey] = "dark"

	svc := controller.NewThemeService(context.Background(), prefs, entity.ThemeLight, zerolog.Nop())
	assert.Equal(t, entity.ThemeDark, svc.Current())
}

func TestTheme_FalloDeLecturaNoImpideArrancar(t *testing.T) {
	prefs := newMemPrefs()
	prefs.getErr = errors.New("disco lleno")

	svc := controller.NewThemeService(context.Background(), prefs, entity.ThemeDark, zerolog.Nop())
	assert.Equal(t, entity.ThemeDark, svc.Current())
}

func TestTheme_ToggleYSet(t *testing.T) {
	ctx := context.Background()
	prefs := newMemPrefs()
	svc := controller.NewThemeService(ctx, prefs, entity.ThemeLight, zerolog.Nop())

	next, err := svc.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeDark, next)
	assert.Equal(t, "dark", prefs.values[controller.ThemeKey])

	require.NoError(t, svc.Set(ctx, entity.ThemeLight))
	assert.Equal(t, entity.ThemeLight, svc.Current())

	err = svc.Set(ctx, "sepia")
	assert.True(t, domain.IsValidation(err))
	assert.ErrorIs(t, err, domain.ErrInvalidTheme)
}

func TestTheme_FalloAlGuardarNoCambiaTema(t *testing.T) {
	ctx := context.Background()
	prefs := newMemPrefs()
	prefs.setErr = errors.New("solo lectura")
	svc := controller.NewThemeService(ctx, prefs, entity.ThemeLight, zerolog.Nop())

	_, err := svc.Toggle(ctx)
	require.ErrorIs(t, err, domain.ErrThemeNotSaved)
	assert.Equal(t, entity.ThemeLight, svc.Current())

	err = svc.Set(ctx, entity.ThemeDark)
	require.ErrorIs(t, err, domain.ErrThemeNotSaved)
	assert.ErrorIs(t, err, prefs.setErr)
	assert.Equal(t, entity.ThemeLight, svc.Current())
}

func TestTheme_PersisteEntreReinicios(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	open := func() *sqlite.PreferenceRepository {
		db, err := sqlite.Open(path)
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		require.NoError(t, sqlite.Migrate(db))
		return sqlite.NewPreferenceRepository(db)
	}

	svc := controller.NewThemeService(ctx, open(), entity.ThemeLight, zerolog.Nop())
	_, err := svc.Toggle(ctx)
	require.NoError(t, err)

	restarted := controller.NewThemeService(ctx, open(), entity.ThemeLight, zerolog.Nop())
	assert.Equal(t, entity.ThemeDark, restarted.Current())
}
