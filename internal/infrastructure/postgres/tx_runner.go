package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/attendance-tracker/internal/application/attendance"
	"github.com/jhoicas/attendance-tracker/internal/domain/repository"
)

var _ attendance.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunForEmployee inicia una transacción, toma un advisory lock por empleado (se libera
// en commit/rollback) y ejecuta fn con el repo de asistencia atado a la tx. Dos
// clock-in/clock-out del mismo empleado quedan serializados; empleados distintos no se bloquean.
func (r *TxRunner) RunForEmployee(ctx context.Context, employeeID string, fn func(repo repository.AttendanceRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, employeeID); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	if err := fn(NewAttendanceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
