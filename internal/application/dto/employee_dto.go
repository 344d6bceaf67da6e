package dto

import (
	"time"

	"github.com/jhoicas/attendance-tracker/internal/domain/entity"
)

// CreateEmployeeRequest entrada para crear un empleado desde el panel admin.
// Las fechas llegan como "YYYY-MM-DD" (input date) o RFC 3339.
type CreateEmployeeRequest struct {
	IDNo       string `json:"id_no"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	BirthDate  string `json:"birth_date"`
	DateHired  string `json:"date_hired"`
}

// EmployeeResponse salida de un empleado (sin password).
type EmployeeResponse struct {
	ID         string     `json:"id"`
	IDNo       string     `json:"id_no"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Department string     `json:"department"`
	Position   string     `json:"position"`
	Email      string     `json:"email"`
	BirthDate  *time.Time `json:"birth_date"`
	DateHired  *time.Time `json:"date_hired"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewEmployeeResponse mapea la entidad a la salida. El password nunca se copia.
func NewEmployeeResponse(e *entity.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}
	return &EmployeeResponse{
		ID:         e.ID,
		IDNo:       e.IDNo,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Department: e.Department,
		Position:   e.Position,
		Email:      e.Email,
		BirthDate:  e.BirthDate,
		DateHired:  e.DateHired,
		CreatedAt:  e.CreatedAt,
	}
}

// LoginRequest credenciales del empleado.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse es el empleado autenticado más el token de sesión (si hay JWT_SECRET).
type LoginResponse struct {
	EmployeeResponse
	Token string `json:"token,omitempty"`
}
