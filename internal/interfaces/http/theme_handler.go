package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/neowarehouse/internal/application/controller"
	"github.com/jhoicas/neowarehouse/internal/application/dto"
	"github.com/jhoicas/neowarehouse/internal/domain/entity"
)

// ThemeHandler expone el esquema de color persistido.
type ThemeHandler struct {
	svc *controller.ThemeService
}

// NewThemeHandler construye el handler.
func NewThemeHandler(svc *controller.ThemeService) *ThemeHandler {
	return &ThemeHandler{svc: svc}
}

// Get godoc
// @Summary      Tema activo
// @Tags         theme
// @Produce      json
// @Success      200  {object}  dto.ThemeDTO
// @Router       /api/theme [get]
func (h *ThemeHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.ThemeDTO{Theme: string(h.svc.Current())})
}

// Set godoc
// @Summary      Cambiar tema
// @Tags         theme
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ThemeDTO  true  "light o dark"
// @Success      200   {object}  dto.ThemeDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/theme [put]
func (h *ThemeHandler) Set(c *fiber.Ctx) error {
	var in dto.ThemeDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	t, _ := entity.ParseTheme(in.Theme)
	if err := h.svc.Set(c.UserContext(), t); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(dto.ThemeDTO{Theme: string(h.svc.Current())})
}

// Toggle godoc
// @Summary      Alternar claro/oscuro
// @Tags         theme
// @Produce      json
// @Success      200  {object}  dto.ThemeDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/theme/toggle [post]
func (h *ThemeHandler) Toggle(c *fiber.Ctx) error {
	t, err := h.svc.Toggle(c.UserContext())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(dto.ThemeDTO{Theme: string(t)})
}
