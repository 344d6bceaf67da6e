package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/attendance-tracker/internal/application/attendance"
	"github.com/jhoicas/attendance-tracker/internal/application/dto"
	"github.com/jhoicas/attendance-tracker/internal/domain"
	"github.com/jhoicas/attendance-tracker/internal/domain/entity"
	"github.com/jhoicas/attendance-tracker/pkg/logger"
)

// AttendanceHandler marcaciones de entrada/salida e historial.
type AttendanceHandler struct {
	uc  *attendance.AttendanceUseCase
	log *logger.Logger
}

// NewAttendanceHandler construye el handler.
func NewAttendanceHandler(uc *attendance.AttendanceUseCase, log *logger.Logger) *AttendanceHandler {
	return &AttendanceHandler{uc: uc, log: log}
}

// parseClock valida el cuerpo antes de tocar el motor: location debe traer latitude y
// longitude numéricos. Un valor no numérico hace fallar el parseo y cuenta igual.
func parseClock(c *fiber.Ctx) (string, entity.GeoPoint, error) {
	var in dto.ClockRequest
	if err := c.BodyParser(&in); err != nil || !in.Location.Valid() {
		return "", entity.GeoPoint{}, domain.ErrInvalidLocation
	}
	return in.EmployeeID, entity.GeoPoint{Latitude: *in.Location.Latitude, Longitude: *in.Location.Longitude}, nil
}

// ClockIn godoc
// @Summary      Marcar entrada
// @Description  La hora la pone el servidor. Con política reject responde 409 si ya hay una jornada abierta.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ClockRequest  true  "employeeId y location"
// @Success      200   {object}  dto.AttendanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/attendance/clockin [post]
func (h *AttendanceHandler) ClockIn(c *fiber.Ctx) error {
	employeeID, loc, err := parseClock(c)
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	if err := checkSession(c, employeeID); err != nil {
		return errorResponse(c, h.log, err)
	}
	out, err := h.uc.ClockIn(c.UserContext(), employeeID, loc)
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return c.JSON(out)
}

// ClockOut godoc
// @Summary      Marcar salida
// @Description  Cierra la jornada abierta más reciente del empleado.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ClockRequest  true  "employeeId y location"
// @Success      200   {object}  dto.AttendanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/attendance/clockout [post]
func (h *AttendanceHandler) ClockOut(c *fiber.Ctx) error {
	employeeID, loc, err := parseClock(c)
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	if err := checkSession(c, employeeID); err != nil {
		return errorResponse(c, h.log, err)
	}
	out, err := h.uc.ClockOut(c.UserContext(), employeeID, loc)
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar asistencia
// @Tags         attendance
// @Produce      json
// @Param        employee_id  query     string  false  "filtrar por empleado"
// @Success      200          {array}   dto.AttendanceResponse
// @Failure      500          {object}  dto.ErrorResponse
// @Router       /api/attendance [get]
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), c.Query("employee_id"))
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return c.JSON(list)
}
