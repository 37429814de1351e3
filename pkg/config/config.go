package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del dashboard (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	API   APIConfig
	Prefs PrefsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP del dashboard.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig servicio remoto de inventario.
type APIConfig struct {
	BaseURL string // ej: http://localhost:3000/api
	Token   string // opcional, se envía como Bearer sin interpretarlo
	Timeout time.Duration // 0 = sin timeout
}

// PrefsConfig preferencias persistidas del cliente.
type PrefsConfig struct {
	DBPath string // archivo SQLite; ":memory:" no persiste entre reinicios
	// PrefersColorScheme preferencia reportada por el entorno ("light" o "dark"),
	// usada solo cuando no hay un tema guardado.
	PrefersColorScheme string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, API_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env en el directorio actual
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

// fromViper construye Config a partir de una instancia ya poblada (facilita tests).
func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "neowarehouse"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8081),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getString(v, "API_BASE_URL", "http://localhost:3000/api"), "/"),
			Token:   getString(v, "API_TOKEN", ""),
			Timeout: time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 0)) * time.Second,
		},
		Prefs: PrefsConfig{
			DBPath:             getString(v, "PREFS_DB_PATH", "neowarehouse.db"),
			PrefersColorScheme: strings.ToLower(getString(v, "PREFERS_COLOR_SCHEME", "light")),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL vacío")
	}
	if cfg.HTTP.Port <= 0 {
		return nil, fmt.Errorf("config: HTTP_PORT inválido (%d)", cfg.HTTP.Port)
	}
	if cfg.API.Timeout < 0 {
		return nil, fmt.Errorf("config: API_TIMEOUT_SECONDS no puede ser negativo")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
