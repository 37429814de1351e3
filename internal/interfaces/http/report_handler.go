package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/neowarehouse/internal/application/controller"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportHandler exporta el reporte de inventario.
type ReportHandler struct {
	svc *controller.ReportService
}

// NewReportHandler construye el handler.
func NewReportHandler(svc *controller.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// PDF godoc
// @Summary      Reporte de inventario en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	out, err := h.svc.PDF(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al generar el reporte")
	}
	c.Set(fiber.HeaderContentType, contentTypePDF)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(out)
}

// XLSX godoc
// @Summary      Reporte de inventario en Excel
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory.xlsx [get]
func (h *ReportHandler) XLSX(c *fiber.Ctx) error {
	out, err := h.svc.XLSX(c.UserContext())
	if err != nil {
		return respondError(c, err, "Error al generar el reporte")
	}
	c.Set(fiber.HeaderContentType, contentTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.xlsx"`)
	return c.Send(out)
}
