package attendance

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/attendance-tracker/internal/application/dto"
	"github.com/jhoicas/attendance-tracker/internal/application/ports"
	"github.com/jhoicas/attendance-tracker/internal/domain"
	"github.com/jhoicas/attendance-tracker/internal/domain/entity"
	"github.com/jhoicas/attendance-tracker/internal/domain/repository"
)

// OpenSessionPolicy qué hacer cuando un empleado marca entrada con una jornada abierta.
type OpenSessionPolicy string

const (
	// PolicyAllow no verifica: marcaciones repetidas dejan varias jornadas abiertas.
	PolicyAllow OpenSessionPolicy = "allow"
	// PolicyReject rechaza la entrada con domain.ErrSessionAlreadyOpen.
	PolicyReject OpenSessionPolicy = "reject"
	// PolicyAutoClose cierra las jornadas abiertas con la misma hora y ubicación de la nueva entrada.
	PolicyAutoClose OpenSessionPolicy = "autoclose"
)

// ParsePolicy convierte el valor de configuración; vacío o desconocido = allow.
func ParsePolicy(s string) OpenSessionPolicy {
	switch OpenSessionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyReject:
		return PolicyReject
	case PolicyAutoClose:
		return PolicyAutoClose
	default:
		return PolicyAllow
	}
}

// AttendanceUseCase motor de asistencia: clock-in / clock-out con hora del servidor.
// La hora enviada por el cliente nunca se usa.
type AttendanceUseCase struct {
	txRunner TxRunner
	repo     repository.AttendanceRepository
	notifier ports.Notifier
	policy   OpenSessionPolicy
	now      func() time.Time
}

// Option configura el caso de uso.
type Option func(*AttendanceUseCase)

// WithPolicy fija la política de jornada abierta.
func WithPolicy(p OpenSessionPolicy) Option {
	return func(uc *AttendanceUseCase) { uc.policy = p }
}

// WithClock reemplaza el reloj del servidor (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *AttendanceUseCase) { uc.now = now }
}

// NewAttendanceUseCase construye el motor. repo se usa para lecturas fuera de la unidad de trabajo.
func NewAttendanceUseCase(txRunner TxRunner, repo repository.AttendanceRepository, notifier ports.Notifier, opts ...Option) *AttendanceUseCase {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	uc := &AttendanceUseCase{
		txRunner: txRunner,
		repo:     repo,
		notifier: notifier,
		policy:   PolicyAllow,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Policy devuelve la política activa.
func (uc *AttendanceUseCase) Policy() OpenSessionPolicy {
	return uc.policy
}

// ClockIn abre una jornada para el empleado en la ubicación indicada.
// El gateway ya validó que la ubicación trae latitud y longitud numéricas.
func (uc *AttendanceUseCase) ClockIn(ctx context.Context, employeeID string, loc entity.GeoPoint) (*dto.AttendanceResponse, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()

	var created *entity.AttendanceRecord
	var autoClosed []*entity.AttendanceRecord
	err := uc.txRunner.RunForEmployee(ctx, employeeID, func(repo repository.AttendanceRepository) error {
		if uc.policy != PolicyAllow {
			for {
				open, err := repo.FindOpen(ctx, employeeID)
				if err != nil {
					return err
				}
				if open == nil {
					break
				}
				if uc.policy == PolicyReject {
					return domain.ErrSessionAlreadyOpen
				}
				open.Close(now, loc)
				if err := repo.Close(ctx, open); err != nil {
					return err
				}
				autoClosed = append(autoClosed, open)
			}
		}
		rec := &entity.AttendanceRecord{
			ID:         uuid.New().String(),
			EmployeeID: employeeID,
			ClockIn:    now,
			LocationIn: loc,
		}
		if err := repo.Create(ctx, rec); err != nil {
			return err
		}
		created = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, rec := range autoClosed {
		uc.notifier.Publish(dto.EventAttendanceUpdate, toAttendanceResponse(rec))
	}
	out := toAttendanceResponse(created)
	uc.notifier.Publish(dto.EventAttendanceUpdate, out)
	return out, nil
}

// ClockOut cierra la jornada abierta más reciente del empleado.
// Si hay varias abiertas (política allow), las anteriores quedan abiertas.
func (uc *AttendanceUseCase) ClockOut(ctx context.Context, employeeID string, loc entity.GeoPoint) (*dto.AttendanceResponse, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()

	var closed *entity.AttendanceRecord
	err := uc.txRunner.RunForEmployee(ctx, employeeID, func(repo repository.AttendanceRepository) error {
		open, err := repo.FindOpen(ctx, employeeID)
		if err != nil {
			return err
		}
		if open == nil {
			return domain.ErrNoOpenSession
		}
		open.Close(now, loc)
		if err := repo.Close(ctx, open); err != nil {
			return err
		}
		closed = open
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := toAttendanceResponse(closed)
	uc.notifier.Publish(dto.EventAttendanceUpdate, out)
	return out, nil
}

// List devuelve todas las jornadas, o solo las del empleado si employeeID no está vacío.
func (uc *AttendanceUseCase) List(ctx context.Context, employeeID string) ([]dto.AttendanceResponse, error) {
	var (
		list []*entity.AttendanceRecord
		err  error
	)
	if employeeID = strings.TrimSpace(employeeID); employeeID != "" {
		list, err = uc.repo.ListByEmployee(ctx, employeeID)
	} else {
		list, err = uc.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttendanceResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toAttendanceResponse(r))
	}
	return out, nil
}

func toAttendanceResponse(r *entity.AttendanceRecord) *dto.AttendanceResponse {
	if r == nil {
		return nil
	}
	out := &dto.AttendanceResponse{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		ClockIn:     r.ClockIn,
		LocationIn:  dto.GeoPointResponse{Latitude: r.LocationIn.Latitude, Longitude: r.LocationIn.Longitude},
		ClockOut:    r.ClockOut,
		HoursWorked: r.HoursWorked,
	}
	if r.LocationOut != nil {
		out.LocationOut = &dto.GeoPointResponse{Latitude: r.LocationOut.Latitude, Longitude: r.LocationOut.Longitude}
	}
	return out
}
