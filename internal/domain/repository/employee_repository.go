package repository

import (
	"context"

	"github.com/jhoicas/attendance-tracker/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	// Create devuelve domain.ErrEmailAlreadyExists si el email ya existe.
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	// FindByEmail devuelve (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.Employee, error)
	// FindByCredentials exige coincidencia exacta de email y password; (nil, nil) si no hay match.
	FindByCredentials(ctx context.Context, email, password string) (*entity.Employee, error)
	List(ctx context.Context) ([]*entity.Employee, error)
	// Delete no falla si el id no existe. No borra asistencias ni ubicaciones.
	Delete(ctx context.Context, id string) error
}
