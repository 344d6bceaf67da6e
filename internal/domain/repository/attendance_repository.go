package repository

import (
	"context"

	"github.com/jhoicas/attendance-tracker/internal/domain/entity"
)

// AttendanceRepository define el puerto de persistencia para AttendanceRecord.
type AttendanceRepository interface {
	Create(ctx context.Context, record *entity.AttendanceRecord) error
	// FindOpen devuelve la jornada abierta con clock_in más reciente, o (nil, nil).
	FindOpen(ctx context.Context, employeeID string) (*entity.AttendanceRecord, error)
	// Close persiste clock_out, location_out y hours_worked.
	// Devuelve domain.ErrNotFound si el registro desapareció o ya estaba cerrado.
	Close(ctx context.Context, record *entity.AttendanceRecord) error
	List(ctx context.Context) ([]*entity.AttendanceRecord, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*entity.AttendanceRecord, error)
}
