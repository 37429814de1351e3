package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/neowarehouse/internal/application/controller"
)

// DashboardHandler maneja los endpoints del panel principal.
type DashboardHandler struct {
	ctrl *controller.DashboardController
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(ctrl *controller.DashboardController) *DashboardHandler {
	return &DashboardHandler{ctrl: ctrl}
}

// View recarga los productos al entrar al panel y devuelve las estadísticas.
// GET /api/dashboard
func (h *DashboardHandler) View(c *fiber.Ctx) error {
	return h.Reload(c)
}

// Reload vuelve a traer los productos y recalcula.
// POST /api/dashboard/reload
func (h *DashboardHandler) Reload(c *fiber.Ctx) error {
	if err := h.ctrl.Load(c.UserContext()); err != nil {
		return respondError(c, err, h.ctrl.View().Error)
	}
	return c.JSON(h.ctrl.View())
}
