package controller

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/neowarehouse/internal/application/dto"
	"github.com/jhoicas/neowarehouse/internal/domain/entity"
	"github.com/jhoicas/neowarehouse/internal/domain/inventory"
	"github.com/jhoicas/neowarehouse/internal/domain/repository"
	"github.com/jhoicas/neowarehouse/pkg/locale"
)

// DashboardController carga los productos y deriva las estadísticas del panel principal.
type DashboardController struct {
	products repository.ProductRepository
	fmt      *locale.Formatter
	log      zerolog.Logger

	mu       sync.Mutex
	items    []entity.Product
	inflight int
	errMsg   string
	seq      requestSeq
}

// NewDashboardController construye el controlador.
func NewDashboardController(products repository.ProductRepository, f *locale.Formatter, log zerolog.Logger) *DashboardController {
	return &DashboardController{
		products: products,
		fmt:      f,
		log:      log.With().Str("component", "dashboard").Logger(),
		items:    []entity.Product{},
	}
}

// Load trae la lista de productos. Las estadísticas se recalculan en cada View.
func (c *DashboardController) Load(ctx context.Context) error {
	c.mu.Lock()
	seq := c.seq.next()
	c.inflight++
	c.errMsg = ""
	c.mu.Unlock()

	items, err := c.products.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if !c.seq.isLatest(seq) {
		return nil
	}
	if err != nil {
		c.errMsg = msgLoadDashboard
		c.log.Error().Err(err).Msg("cargar estadísticas")
		return err
	}
	c.items = items
	return nil
}

// Products copia de la última lista cargada.
func (c *DashboardController) Products() []entity.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Product(nil), c.items...)
}

// View instantánea del panel.
func (c *DashboardController) View() dto.DashboardView {
	c.mu.Lock()
	defer c.mu.Unlock()
	stats := inventory.ComputeDashboardStats(c.items)
	return dto.DashboardView{
		Stats:   StatsDTO(stats),
		Cards:   StatCards(stats, c.fmt),
		Loading: c.inflight > 0,
		Error:   c.errMsg,
	}
}

// StatsDTO copia las estadísticas al DTO de salida.
func StatsDTO(s inventory.DashboardStats) dto.DashboardStatsDTO {
	return dto.DashboardStatsDTO{
		TotalInventoryValue: s.TotalInventoryValue,
		TotalProducts:       s.TotalProducts,
		TotalStock:          s.TotalStock,
		LowStockProducts:    s.LowStockProducts,
		AveragePrice:        s.AveragePrice,
	}
}

// StatCards tarjetas del panel con cifras es-CL.
// La tarjeta de stock bajo se marca en rojo solo si hay productos bajo el umbral.
func StatCards(s inventory.DashboardStats, f *locale.Formatter) []dto.StatCard {
	lowTone := ToneNeutral
	if s.LowStockProducts > 0 {
		lowTone = ToneDanger
	}
	return []dto.StatCard{
		{
			Key:      "totalInventoryValue",
			Title:    "Valor Total del Inventario",
			Value:    f.Money(s.TotalInventoryValue),
			Subtitle: "Inversión total en productos",
			Tone:     ToneSuccess,
		},
		{
			Key:      "totalProducts",
			Title:    "Total de Productos",
			Value:    f.Int(s.TotalProducts),
			Subtitle: "Productos diferentes en catálogo",
			Tone:     ToneInfo,
		},
		{
			Key:      "totalStock",
			Title:    "Unidades en Stock",
			Value:    f.Int(s.TotalStock),
			Subtitle: "Total de unidades disponibles",
			Tone:     ToneAccent,
		},
		{
			Key:      "lowStockProducts",
			Title:    "Productos con Stock Bajo",
			Value:    f.Int(s.LowStockProducts),
			Subtitle: "Menos de 10 unidades",
			Tone:     lowTone,
		},
	}
}
