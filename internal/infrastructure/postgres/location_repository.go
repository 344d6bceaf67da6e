package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/attendance-tracker/internal/domain/entity"
	"github.com/jhoicas/attendance-tracker/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo última ubicación por empleado sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

func (r *LocationRepo) GetByEmployee(ctx context.Context, employeeID string) (*entity.LocationSnapshot, error) {
	query := `SELECT id, employee_id, latitude, longitude, updated_at FROM locations WHERE employee_id = $1`
	var l entity.LocationSnapshot
	err := r.q.QueryRow(ctx, query, employeeID).Scan(&l.ID, &l.EmployeeID, &l.Latitude, &l.Longitude, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// Save hace upsert por employee_id: dos escrituras concurrentes del mismo empleado
// nunca crean dos filas. En conflicto se conserva el id existente.
func (r *LocationRepo) Save(ctx context.Context, l *entity.LocationSnapshot) error {
	query := `
		INSERT INTO locations (id, employee_id, latitude, longitude, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id) DO UPDATE
		SET latitude = EXCLUDED.latitude, longitude = EXCLUDED.longitude, updated_at = EXCLUDED.updated_at
		RETURNING id`
	err := r.q.QueryRow(ctx, query, l.ID, l.EmployeeID, l.Latitude, l.Longitude, l.UpdatedAt).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("upsert location: %w", err)
	}
	return nil
}

func (r *LocationRepo) List(ctx context.Context) ([]*entity.LocationSnapshot, error) {
	rows, err := r.q.Query(ctx, `SELECT id, employee_id, latitude, longitude, updated_at FROM locations ORDER BY employee_id`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var list []*entity.LocationSnapshot
	for rows.Next() {
		var l entity.LocationSnapshot
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.Latitude, &l.Longitude, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
