package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/attendance-tracker/internal/application/auth"
	"github.com/jhoicas/attendance-tracker/internal/application/dto"
	"github.com/jhoicas/attendance-tracker/internal/domain"
	"github.com/jhoicas/attendance-tracker/pkg/logger"
)

// AuthHandler login de empleados.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Devuelve el empleado; incluye token si el servidor tiene JWT_SECRET.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return errorResponse(c, h.log, domain.ErrUnauthorized)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return c.JSON(out)
}
