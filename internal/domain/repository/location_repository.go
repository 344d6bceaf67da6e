package repository

import (
	"context"

	"github.com/jhoicas/attendance-tracker/internal/domain/entity"
)

// LocationRepository define el puerto para la última ubicación de cada empleado.
// El upsert se expresa como lectura (GetByEmployee) seguida de escritura (Save).
type LocationRepository interface {
	// GetByEmployee devuelve (nil, nil) si el empleado aún no reportó ubicación.
	GetByEmployee(ctx context.Context, employeeID string) (*entity.LocationSnapshot, error)
	// Save crea la fila si no existe o la sobreescribe (una fila por empleado).
	Save(ctx context.Context, snapshot *entity.LocationSnapshot) error
	List(ctx context.Context) ([]*entity.LocationSnapshot, error)
}
