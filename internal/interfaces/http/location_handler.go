package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/attendance-tracker/internal/application/dto"
	"github.com/jhoicas/attendance-tracker/internal/application/usecase"
	"github.com/jhoicas/attendance-tracker/pkg/logger"
)

// LocationHandler ubicación en vivo de los empleados.
type LocationHandler struct {
	uc  *usecase.LocationUseCase
	log *logger.Logger
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase, log *logger.Logger) *LocationHandler {
	return &LocationHandler{uc: uc, log: log}
}

// Update godoc
// @Summary      Reportar ubicación
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UpdateLocationRequest  true  "employeeId, latitude, longitude"
// @Success      200   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/locations/update [post]
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := checkSession(c, in.EmployeeID); err != nil {
		return errorResponse(c, h.log, err)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ubicaciones
// @Tags         locations
// @Produce      json
// @Success      200  {array}   dto.LocationResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return c.JSON(list)
}
