package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/neowarehouse/internal/application/controller"
	"github.com/jhoicas/neowarehouse/internal/application/dto"
)

// CategoryHandler expone el CategoriesController.
type CategoryHandler struct {
	ctrl *controller.CategoriesController
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(ctrl *controller.CategoriesController) *CategoryHandler {
	return &CategoryHandler{ctrl: ctrl}
}

// View godoc
// @Summary      Estado de la pantalla de categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoriesView
// @Router       /api/categories [get]
func (h *CategoryHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.ctrl.View())
}

// Reload godoc
// @Summary      Recargar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoriesView
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/categories/reload [post]
func (h *CategoryHandler) Reload(c *fiber.Ctx) error {
	if err := h.ctrl.Load(c.UserContext()); err != nil {
		return respondError(c, err, h.ctrl.View().Error)
	}
	return c.JSON(h.ctrl.View())
}

// OpenCreate godoc
// @Summary      Abrir modal de creación
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoriesView
// @Router       /api/categories/form/create [post]
func (h *CategoryHandler) OpenCreate(c *fiber.Ctx) error {
	h.ctrl.OpenCreate()
	return c.JSON(h.ctrl.View())
}

// OpenEdit godoc
// @Summary      Abrir modal de edición
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoriesView
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/form/edit/{id} [post]
func (h *CategoryHandler) OpenEdit(c *fiber.Ctx) error {
	if err := h.ctrl.OpenEdit(c.Params("id")); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(h.ctrl.View())
}

// SetForm godoc
// @Summary      Actualizar valores del formulario
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryForm  true  "Valores"
// @Success      200   {object}  dto.CategoriesView
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories/form [put]
func (h *CategoryHandler) SetForm(c *fiber.Ctx) error {
	var in dto.CategoryForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.ctrl.SetForm(in); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(h.ctrl.View())
}

// Submit godoc
// @Summary      Guardar el formulario
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoriesView
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/categories/form/submit [post]
func (h *CategoryHandler) Submit(c *fiber.Ctx) error {
	if _, err := h.ctrl.Submit(c.UserContext()); err != nil {
		return respondError(c, err, h.ctrl.View().Error)
	}
	return c.JSON(h.ctrl.View())
}

// Close godoc
// @Summary      Cerrar el modal
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoriesView
// @Router       /api/categories/form [delete]
func (h *CategoryHandler) Close(c *fiber.Ctx) error {
	h.ctrl.Close()
	return c.JSON(h.ctrl.View())
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Produce      json
// @Param        id       path   string  true  "ID de la categoría"
// @Param        confirm  query  bool    true  "Confirmación del usuario"
// @Success      200  {object}  dto.CategoriesView
// @Failure      428  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.ctrl.Delete(c.UserContext(), c.Params("id"), confirmFromQuery(c)); err != nil {
		return respondError(c, err, h.ctrl.View().Error)
	}
	return c.JSON(h.ctrl.View())
}
