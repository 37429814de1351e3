package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/neowarehouse/internal/application/dto"
	"github.com/jhoicas/neowarehouse/internal/application/ports"
	"github.com/jhoicas/neowarehouse/internal/domain/inventory"
	"github.com/jhoicas/neowarehouse/internal/domain/repository"
	"github.com/jhoicas/neowarehouse/pkg/locale"
)

// ReportTitle título de los reportes exportados.
const ReportTitle = "Reporte de Inventario"

// ReportService arma el reporte de inventario con datos frescos del servicio remoto
// y lo entrega al renderer. No toca el estado de los controladores.
type ReportService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	renderer   ports.ReportRenderer
	fmt        *locale.Formatter
	log        zerolog.Logger
	now        func() time.Time
}

// NewReportService construye el servicio.
func NewReportService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	renderer ports.ReportRenderer,
	f *locale.Formatter,
	log zerolog.Logger,
) *ReportService {
	return &ReportService{
		products:   products,
		categories: categories,
		renderer:   renderer,
		fmt:        f,
		log:        log.With().Str("component", "report").Logger(),
		now:        time.Now,
	}
}

// Build trae productos y categorías y arma el reporte.
// Sin categorías el reporte igual se arma: la etiqueta cae al id crudo.
func (s *ReportService) Build(ctx context.Context) (dto.InventoryReport, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return dto.InventoryReport{}, fmt.Errorf("reporte: listar productos: %w", err)
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("reporte sin nombres de categoría")
		categories = nil
	}
	stats := inventory.ComputeDashboardStats(products)
	rows := make([]dto.ProductRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow(p, categories, s.fmt))
	}
	return dto.InventoryReport{
		Title:       ReportTitle,
		GeneratedAt: s.now(),
		Stats:       StatsDTO(stats),
		Cards:       StatCards(stats, s.fmt),
		Rows:        rows,
	}, nil
}

// PDF reporte en PDF.
func (s *ReportService) PDF(ctx context.Context) ([]byte, error) {
	report, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.renderer.RenderPDF(ctx, report)
	if err != nil {
		s.log.Error().Err(err).Msg("renderizar PDF")
		return nil, err
	}
	return out, nil
}

// XLSX reporte en planilla Excel.
func (s *ReportService) XLSX(ctx context.Context) ([]byte, error) {
	report, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.renderer.RenderXLSX(ctx, report)
	if err != nil {
		s.log.Error().Err(err).Msg("renderizar XLSX")
		return nil, err
	}
	return out, nil
}
