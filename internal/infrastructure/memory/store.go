// Package memory implementa los puertos de persistencia en memoria del proceso.
// Se usa con STORE_DRIVER=memory (desarrollo local) y como base de los tests.
// Los datos se pierden al reiniciar.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/attendance-tracker/internal/application/attendance"
	"github.com/jhoicas/attendance-tracker/internal/domain"
	"github.com/jhoicas/attendance-tracker/internal/domain/entity"
	"github.com/jhoicas/attendance-tracker/internal/domain/repository"
)

var (
	_ repository.EmployeeRepository   = (*EmployeeRepo)(nil)
	_ repository.AttendanceRepository = (*AttendanceRepo)(nil)
	_ repository.LocationRepository   = (*LocationRepo)(nil)
	_ attendance.TxRunner             = (*Store)(nil)
)

// Store guarda las tres colecciones. mu protege los datos; txMu serializa las
// unidades de trabajo de asistencia.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	employees  []*entity.Employee
	attendance []*entity.AttendanceRecord
	locations  []*entity.LocationSnapshot
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{}
}

// Employees devuelve el repositorio de empleados.
func (s *Store) Employees() *EmployeeRepo { return &EmployeeRepo{s: s} }

// Attendance devuelve el repositorio de asistencia.
func (s *Store) Attendance() *AttendanceRepo { return &AttendanceRepo{s: s} }

// Locations devuelve el repositorio de ubicaciones.
func (s *Store) Locations() *LocationRepo { return &LocationRepo{s: s} }

// RunForEmployee ejecuta fn con el repositorio de asistencia. Todas las unidades de
// trabajo comparten un único candado, lo que basta para un proceso en memoria.
func (s *Store) RunForEmployee(ctx context.Context, _ string, fn func(repo repository.AttendanceRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(s.Attendance())
}

// ── Employees ────────────────────────────────────────────────────────────────

// EmployeeRepo implementación en memoria de EmployeeRepository.
type EmployeeRepo struct {
	s *Store
}

// Create agrega el empleado; el email es único (sensible a mayúsculas).
func (r *EmployeeRepo) Create(_ context.Context, employee *entity.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.employees {
		if e.Email == employee.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *employee
	r.s.employees = append(r.s.employees, &cp)
	return nil
}

func (r *EmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	return r.find(func(e *entity.Employee) bool { return e.ID == id }), nil
}

func (r *EmployeeRepo) FindByEmail(_ context.Context, email string) (*entity.Employee, error) {
	return r.find(func(e *entity.Employee) bool { return e.Email == email }), nil
}

func (r *EmployeeRepo) FindByCredentials(_ context.Context, email, password string) (*entity.Employee, error) {
	return r.find(func(e *entity.Employee) bool { return e.Email == email && e.Password == password }), nil
}

func (r *EmployeeRepo) find(match func(*entity.Employee) bool) *entity.Employee {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, e := range r.s.employees {
		if match(e) {
			cp := *e
			return &cp
		}
	}
	return nil
}

func (r *EmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Employee, 0, len(r.s.employees))
	for _, e := range r.s.employees {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

// Delete quita el empleado si existe; no toca asistencia ni ubicaciones.
func (r *EmployeeRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, e := range r.s.employees {
		if e.ID == id {
			r.s.employees = append(r.s.employees[:i], r.s.employees[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Attendance ───────────────────────────────────────────────────────────────

// AttendanceRepo implementación en memoria de AttendanceRepository.
type AttendanceRepo struct {
	s *Store
}

func (r *AttendanceRepo) Create(_ context.Context, record *entity.AttendanceRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *record
	r.s.attendance = append(r.s.attendance, &cp)
	return nil
}

// FindOpen recorre en orden de inserción; con clock_in empatado gana la más reciente.
func (r *AttendanceRepo) FindOpen(_ context.Context, employeeID string) (*entity.AttendanceRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var latest *entity.AttendanceRecord
	for _, rec := range r.s.attendance {
		if rec.EmployeeID != employeeID || !rec.IsOpen() {
			continue
		}
		if latest == nil || !rec.ClockIn.Before(latest.ClockIn) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *AttendanceRepo) Close(_ context.Context, record *entity.AttendanceRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rec := range r.s.attendance {
		if rec.ID == record.ID && rec.IsOpen() {
			rec.ClockOut = record.ClockOut
			rec.LocationOut = record.LocationOut
			rec.HoursWorked = record.HoursWorked
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *AttendanceRepo) List(_ context.Context) ([]*entity.AttendanceRecord, error) {
	return r.filter(func(*entity.AttendanceRecord) bool { return true }), nil
}

func (r *AttendanceRepo) ListByEmployee(_ context.Context, employeeID string) ([]*entity.AttendanceRecord, error) {
	return r.filter(func(rec *entity.AttendanceRecord) bool { return rec.EmployeeID == employeeID }), nil
}

func (r *AttendanceRepo) filter(match func(*entity.AttendanceRecord) bool) []*entity.AttendanceRecord {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.AttendanceRecord, 0, len(r.s.attendance))
	for _, rec := range r.s.attendance {
		if match(rec) {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out
}

// ── Locations ────────────────────────────────────────────────────────────────

// LocationRepo implementación en memoria de LocationRepository.
type LocationRepo struct {
	s *Store
}

func (r *LocationRepo) GetByEmployee(_ context.Context, employeeID string) (*entity.LocationSnapshot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, l := range r.s.locations {
		if l.EmployeeID == employeeID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

// Save sobreescribe la fila del empleado o la agrega si no existe.
func (r *LocationRepo) Save(_ context.Context, snapshot *entity.LocationSnapshot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *snapshot
	for i, l := range r.s.locations {
		if l.EmployeeID == snapshot.EmployeeID {
			cp.ID = l.ID
			snapshot.ID = l.ID
			r.s.locations[i] = &cp
			return nil
		}
	}
	r.s.locations = append(r.s.locations, &cp)
	return nil
}

func (r *LocationRepo) List(_ context.Context) ([]*entity.LocationSnapshot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.LocationSnapshot, 0, len(r.s.locations))
	for _, l := range r.s.locations {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}
