package postgres

import "github.com/jackc/pgx/v5/pgxpool"

// Store agrupa los adaptadores PostgreSQL que comparten el pool.
type Store struct {
	Employees  *EmployeeRepo
	Attendance *AttendanceRepo
	Locations  *LocationRepo
	Tx         *TxRunner
}

// NewStore construye los repos sobre el pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Employees:  NewEmployeeRepository(pool),
		Attendance: NewAttendanceRepository(pool),
		Locations:  NewLocationRepository(pool),
		Tx:         NewTxRunner(pool),
	}
}
