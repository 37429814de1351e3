package ports

import (
	"context"

	"github.com/jhoicas/neowarehouse/internal/application/dto"
)

// ReportRenderer puerto de salida para exportar el reporte de inventario.
// Los adaptadores (maroto para PDF, excelize para XLSX) solo conocen el DTO ya armado.
type ReportRenderer interface {
	RenderPDF(ctx context.Context, report dto.InventoryReport) ([]byte, error)
	RenderXLSX(ctx context.Context, report dto.InventoryReport) ([]byte, error)
}
