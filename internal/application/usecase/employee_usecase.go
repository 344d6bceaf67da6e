package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/attendance-tracker/internal/application/auth"
	"github.com/jhoicas/attendance-tracker/internal/application/dto"
	"github.com/jhoicas/attendance-tracker/internal/application/ports"
	"github.com/jhoicas/attendance-tracker/internal/domain"
	"github.com/jhoicas/attendance-tracker/internal/domain/entity"
	"github.com/jhoicas/attendance-tracker/internal/domain/repository"
)

// EmployeeUseCase alta, baja y listado de empleados desde el panel admin.
type EmployeeUseCase struct {
	repo        repository.EmployeeRepository
	credentials auth.Credentials
	notifier    ports.Notifier
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, credentials auth.Credentials, notifier ports.Notifier) *EmployeeUseCase {
	if credentials == nil {
		credentials = auth.NewPlainCredentials()
	}
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	return &EmployeeUseCase{repo: repo, credentials: credentials, notifier: notifier}
}

// Create crea un empleado. Solo exige email y password; el resto de campos es libre.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	birth, err := parseDate(in.BirthDate)
	if err != nil {
		return nil, err
	}
	hired, err := parseDate(in.DateHired)
	if err != nil {
		return nil, err
	}
	password, err := uc.credentials.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	emp := &entity.Employee{
		ID:         uuid.New().String(),
		IDNo:       strings.TrimSpace(in.IDNo),
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		Department: strings.TrimSpace(in.Department),
		Position:   strings.TrimSpace(in.Position),
		Email:      email,
		Password:   password,
		BirthDate:  birth,
		DateHired:  hired,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, emp); err != nil {
		return nil, err
	}
	out := dto.NewEmployeeResponse(emp)
	uc.notifier.Publish(dto.EventEmployeeUpdate, out)
	return out, nil
}

// List lista todos los empleados.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *dto.NewEmployeeResponse(e))
	}
	return out, nil
}

// Delete elimina un empleado. Un id desconocido no es error. Las asistencias y la
// ubicación del empleado se conservan (no hay borrado en cascada).
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notifier.Publish(dto.EventEmployeeDeleted, id)
	return nil
}

// parseDate acepta "YYYY-MM-DD" (input date del navegador) o RFC 3339; vacío = sin fecha.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, domain.ErrInvalidInput
}
