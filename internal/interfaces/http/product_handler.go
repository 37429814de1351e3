package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/neowarehouse/internal/application/controller"
	"github.com/jhoicas/neowarehouse/internal/application/dto"
)

// ProductHandler expone el ProductsController.
type ProductHandler struct {
	ctrl *controller.ProductsController
}

// NewProductHandler construye el handler.
func NewProductHandler(ctrl *controller.ProductsController) *ProductHandler {
	return &ProductHandler{ctrl: ctrl}
}

// View godoc
// @Summary      Estado de la pantalla de productos
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductsView
// @Router       /api/products [get]
func (h *ProductHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.ctrl.View())
}

// Reload godoc
// @Summary      Recargar productos desde el servicio remoto
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductsView
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/products/reload [post]
func (h *ProductHandler) Reload(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if err := h.ctrl.Load(ctx); err != nil {
		return respondError(c, err, h.ctrl.View().Error)
	}
	if err := h.ctrl.LoadCategories(ctx); err != nil {
		return respondError(c, err, h.ctrl.View().Error)
	}
	return c.JSON(h.ctrl.View())
}

// OpenCreate godoc
// @Summary      Abrir modal de creación
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductsView
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/products/form/create [post]
func (h *ProductHandler) OpenCreate(c *fiber.Ctx) error {
	if err := h.ctrl.OpenCreate(c.UserContext()); err != nil {
		return respondError(c, err, h.ctrl.View().Error)
	}
	return c.JSON(h.ctrl.View())
}

// OpenEdit godoc
// @Summary      Abrir modal de edición
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductsView
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/form/edit/{id} [post]
func (h *ProductHandler) OpenEdit(c *fiber.Ctx) error {
	if err := h.ctrl.OpenEdit(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err, h.ctrl.View().Error)
	}
	return c.JSON(h.ctrl.View())
}

// SetForm godoc
// @Summary      Actualizar valores del formulario
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductForm  true  "Valores"
// @Success      200   {object}  dto.ProductsView
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/form [put]
func (h *ProductHandler) SetForm(c *fiber.Ctx) error {
	var in dto.ProductForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.ctrl.SetForm(in); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(h.ctrl.View())
}

// Submit godoc
// @Summary      Guardar el formulario (crear o actualizar)
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductsView
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/products/form/submit [post]
func (h *ProductHandler) Submit(c *fiber.Ctx) error {
	if _, err := h.ctrl.Submit(c.UserContext()); err != nil {
		return respondError(c, err, h.ctrl.View().Error)
	}
	return c.JSON(h.ctrl.View())
}

// Close godoc
// @Summary      Cerrar el modal
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductsView
// @Router       /api/products/form [delete]
func (h *ProductHandler) Close(c *fiber.Ctx) error {
	h.ctrl.Close()
	return c.JSON(h.ctrl.View())
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Produce      json
// @Param        id       path   string  true  "ID del producto"
// @Param        confirm  query  bool    true  "Confirmación del usuario"
// @Success      200  {object}  dto.ProductsView
// @Failure      428  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.ctrl.Delete(c.UserContext(), c.Params("id"), confirmFromQuery(c)); err != nil {
		return respondError(c, err, h.ctrl.View().Error)
	}
	return c.JSON(h.ctrl.View())
}

// confirmFromQuery la vista ya mostró el diálogo; ?confirm=true es la respuesta.
func confirmFromQuery(c *fiber.Ctx) controller.ConfirmFunc {
	ok := c.QueryBool("confirm", false)
	return func(string) bool { return ok }
}
