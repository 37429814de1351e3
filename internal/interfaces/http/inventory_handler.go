package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/neowarehouse/internal/application/controller"
	"github.com/jhoicas/neowarehouse/internal/application/dto"
)

// InventoryHandler expone el historial de movimientos y su modal.
type InventoryHandler struct {
	ctrl *controller.InventoryController
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ctrl *controller.InventoryController) *InventoryHandler {
	return &InventoryHandler{ctrl: ctrl}
}

// View godoc
// @Summary      Estado de la pantalla de inventario
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventoryView
// @Router       /api/inventory [get]
func (h *InventoryHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.ctrl.View())
}

// Reload godoc
// @Summary      Recargar movimientos y productos del selector
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventoryView
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventory/reload [post]
func (h *InventoryHandler) Reload(c *fiber.Ctx) error {
	if err := h.ctrl.Load(c.UserContext()); err != nil {
		return respondError(c, err, h.ctrl.View().Error)
	}
	return c.JSON(h.ctrl.View())
}

// OpenCreate godoc
// @Summary      Abrir modal de nuevo movimiento
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventoryView
// @Router       /api/inventory/form/create [post]
func (h *InventoryHandler) OpenCreate(c *fiber.Ctx) error {
	h.ctrl.OpenCreate()
	return c.JSON(h.ctrl.View())
}

// SetForm godoc
// @Summary      Actualizar valores del movimiento
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementForm  true  "Valores"
// @Success      200   {object}  dto.InventoryView
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/form [put]
func (h *InventoryHandler) SetForm(c *fiber.Ctx) error {
	var in dto.MovementForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.ctrl.SetForm(in); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(h.ctrl.View())
}

// Submit godoc
// @Summary      Registrar el movimiento
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventoryView
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventory/form/submit [post]
func (h *InventoryHandler) Submit(c *fiber.Ctx) error {
	if _, err := h.ctrl.Submit(c.UserContext()); err != nil {
		return respondError(c, err, h.ctrl.View().Error)
	}
	return c.JSON(h.ctrl.View())
}

// Close godoc
// @Summary      Cerrar el modal
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventoryView
// @Router       /api/inventory/form [delete]
func (h *InventoryHandler) Close(c *fiber.Ctx) error {
	h.ctrl.Close()
	return c.JSON(h.ctrl.View())
}
