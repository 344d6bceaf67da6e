package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/attendance-tracker/internal/application/dto"
	"github.com/jhoicas/attendance-tracker/internal/domain"
)

// LocalSessionEmployeeID key en c.Locals con el empleado del token de sesión.
const LocalSessionEmployeeID = "session_employee_id"

// TokenVerifier valida tokens de sesión (lo implementa auth.AuthUseCase).
type TokenVerifier interface {
	TokensEnabled() bool
	VerifyToken(token string) (string, error)
}

// SessionMiddleware lee el Bearer token de las acciones del empleado. Sin header se deja
// pasar salvo que required sea true. Con tokens deshabilitados el header se ignora.
func SessionMiddleware(verifier TokenVerifier, required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if verifier == nil || !verifier.TokensEnabled() {
			return c.Next()
		}
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			if required {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
			}
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		employeeID, err := verifier.VerifyToken(strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalSessionEmployeeID, employeeID)
		return c.Next()
	}
}

// GetSessionEmployeeID devuelve el empleado del token, o "" si la request no trajo token.
func GetSessionEmployeeID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionEmployeeID).(string)
	return s
}

// checkSession exige que el employeeId del cuerpo coincida con el del token, si lo hay.
func checkSession(c *fiber.Ctx, employeeID string) error {
	if session := GetSessionEmployeeID(c); session != "" && session != strings.TrimSpace(employeeID) {
		return domain.ErrForbidden
	}
	return nil
}
