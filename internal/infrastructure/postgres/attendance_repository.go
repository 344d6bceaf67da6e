package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/attendance-tracker/internal/domain"
	"github.com/jhoicas/attendance-tracker/internal/domain/entity"
	"github.com/jhoicas/attendance-tracker/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

const attendanceColumns = `id, employee_id, clock_in, latitude_in, longitude_in, clock_out, latitude_out, longitude_out, hours_worked`

// AttendanceRepo implementación sobre PostgreSQL (usable con pool o tx).
type AttendanceRepo struct {
	q Querier
}

// NewAttendanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

// Create persiste una jornada abierta.
func (r *AttendanceRepo) Create(ctx context.Context, rec *entity.AttendanceRecord) error {
	query := `
		INSERT INTO attendance (id, employee_id, clock_in, latitude_in, longitude_in)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, rec.ID, rec.EmployeeID, rec.ClockIn, rec.LocationIn.Latitude, rec.LocationIn.Longitude)
	if err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

// FindOpen jornada abierta más reciente; con clock_in empatado gana la insertada después (seq).
func (r *AttendanceRepo) FindOpen(ctx context.Context, employeeID string) (*entity.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance
		WHERE employee_id = $1 AND clock_out IS NULL
		ORDER BY clock_in DESC, seq DESC
		LIMIT 1`
	rec, err := scanAttendance(r.q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find open attendance: %w", err)
	}
	return rec, nil
}

// Close escribe clock_out, ubicación de salida y horas. Solo afecta jornadas abiertas.
func (r *AttendanceRepo) Close(ctx context.Context, rec *entity.AttendanceRecord) error {
	if rec.ClockOut == nil || rec.LocationOut == nil {
		return domain.ErrInvalidInput
	}
	query := `
		UPDATE attendance
		SET clock_out = $2, latitude_out = $3, longitude_out = $4, hours_worked = $5
		WHERE id = $1 AND clock_out IS NULL`
	tag, err := r.q.Exec(ctx, query, rec.ID, *rec.ClockOut, rec.LocationOut.Latitude, rec.LocationOut.Longitude, rec.HoursWorked)
	if err != nil {
		return fmt.Errorf("close attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todas las jornadas en orden de inserción.
func (r *AttendanceRepo) List(ctx context.Context) ([]*entity.AttendanceRecord, error) {
	return r.list(ctx, `SELECT `+attendanceColumns+` FROM attendance ORDER BY seq`)
}

// ListByEmployee jornadas de un empleado en orden de inserción.
func (r *AttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*entity.AttendanceRecord, error) {
	return r.list(ctx, `SELECT `+attendanceColumns+` FROM attendance WHERE employee_id = $1 ORDER BY seq`, employeeID)
}

func (r *AttendanceRepo) list(ctx context.Context, query string, args ...any) ([]*entity.AttendanceRecord, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	var list []*entity.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func scanAttendance(row pgx.Row) (*entity.AttendanceRecord, error) {
	var (
		rec         entity.AttendanceRecord
		clockOut    *time.Time
		latOut      *float64
		lonOut      *float64
		hoursWorked decimal.NullDecimal
	)
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.ClockIn, &rec.LocationIn.Latitude, &rec.LocationIn.Longitude,
		&clockOut, &latOut, &lonOut, &hoursWorked,
	)
	if err != nil {
		return nil, err
	}
	rec.ClockOut = clockOut
	if latOut != nil && lonOut != nil {
		rec.LocationOut = &entity.GeoPoint{Latitude: *latOut, Longitude: *lonOut}
	}
	if hoursWorked.Valid {
		h := hoursWorked.Decimal
		rec.HoursWorked = &h
	}
	return &rec, nil
}
