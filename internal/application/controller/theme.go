package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/neowarehouse/internal/domain"
	"github.com/jhoicas/neowarehouse/internal/domain/entity"
	"github.com/jhoicas/neowarehouse/internal/domain/repository"
)

// ThemeKey clave del esquema de color en el almacén de preferencias.
const ThemeKey = "theme"

// ThemeService esquema de color activo. Se lee una vez al iniciar y cada cambio se persiste.
type ThemeService struct {
	repo repository.PreferenceRepository
	log  zerolog.Logger

	mu      sync.RWMutex
	current entity.Theme
}

// NewThemeService lee el tema guardado; si no hay uno válido usa fallback
// (preferencia del entorno). Un fallo de lectura no impide arrancar.
func NewThemeService(ctx context.Context, repo repository.PreferenceRepository, fallback entity.Theme, log zerolog.Logger) *ThemeService {
	s := &ThemeService{
		repo:    repo,
		log:     log.With().Str("component", "theme").Logger(),
		current: fallback,
	}
	if _, ok := entity.ParseTheme(string(fallback)); !ok {
		s.current = entity.ThemeLight
	}
	raw, ok, err := repo.Get(ctx, ThemeKey)
	switch {
	case err != nil:
		s.log.Warn().Err(err).Msg("no se pudo leer el tema guardado; se usa el del entorno")
	case ok:
		if t, valid := entity.ParseTheme(raw); valid {
			s.current = t
		} else {
			s.log.Warn().Str("value", raw).Msg("tema guardado inválido; se ignora")
		}
	}
	return s
}

// Current tema activo.
func (s *ThemeService) Current() entity.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set persiste y activa t. Si la escritura falla, el tema activo no cambia.
func (s *ThemeService) Set(ctx context.Context, t entity.Theme) error {
	if _, ok := entity.ParseTheme(string(t)); !ok {
		return domain.NewValidationError("theme", domain.ErrInvalidTheme)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Set(ctx, ThemeKey, string(t)); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrThemeNotSaved, err)
	}
	s.current = t
	return nil
}

// Toggle alterna entre claro y oscuro y devuelve el nuevo tema.
func (s *ThemeService) Toggle(ctx context.Context) (entity.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current.Toggle()
	if err := s.repo.Set(ctx, ThemeKey, string(next)); err != nil {
		return s.current, fmt.Errorf("%w: %w", domain.ErrThemeNotSaved, err)
	}
	s.current = next
	return next, nil
}
