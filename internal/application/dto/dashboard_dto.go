package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO estadísticas crudas del dashboard.
type DashboardStatsDTO struct {
	TotalInventoryValue decimal.Decimal `json:"totalInventoryValue"`
	TotalProducts       int             `json:"totalProducts"`
	TotalStock          int             `json:"totalStock"`
	LowStockProducts    int             `json:"lowStockProducts"`
	AveragePrice        decimal.Decimal `json:"averagePrice"`
}

// Tonos de color semánticos de tarjetas y etiquetas; cada vista los traduce a su paleta.
const (
	ToneSuccess = "success"
	ToneDanger  = "danger"
	ToneWarning = "warning"
	ToneInfo    = "info"
	ToneAccent  = "accent"
	ToneNeutral = "neutral"
)

// StatCard tarjeta del dashboard con el valor ya formateado (es-CL).
type StatCard struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle"`
	Tone     string `json:"tone"` // uno de los Tone*
}

// DashboardView estado de la pantalla principal.
type DashboardView struct {
	Stats   DashboardStatsDTO `json:"stats"`
	Cards   []StatCard        `json:"cards"`
	Loading bool              `json:"loading"`
	Error   string            `json:"error,omitempty"`
}

// ThemeDTO esquema de color activo.
type ThemeDTO struct {
	Theme string `json:"theme"`
}
