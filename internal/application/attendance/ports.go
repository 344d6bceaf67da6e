package attendance

import (
	"context"

	"github.com/jhoicas/attendance-tracker/internal/domain/repository"
)

// TxRunner ejecuta fn como unidad de trabajo serializada por empleado, pasando un
// repositorio de asistencia atado a esa unidad. Dos marcaciones concurrentes del
// mismo empleado no se intercalan.
type TxRunner interface {
	RunForEmployee(ctx context.Context, employeeID string, fn func(repo repository.AttendanceRepository) error) error
}
