package usecase

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

// LocationUseCase última ubicación conocida de cada empleado (mapa del admin).
type LocationUseCase struct {
	repo     repository.LocationRepository
	notifier ports.Notifier
	now      func() time.Time
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, notifier ports.Notifier) *LocationUseCase {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	return &LocationUseCase{repo: repo, notifier: notifier, now: time.Now}
}

// Update lee la ubicación actual del empleado; si no existe la crea, si existe la
// sobreescribe en su lugar (mismo id). Siempre queda una sola fila por empleado.
func (uc *LocationUseCase) Update(ctx context.Context, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" {
		return nil, domain.ErrInvalidInput
	}
	snap, err := uc.repo.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		snap = &entity.LocationSnapshot{ID: uuid.New().String(), EmployeeID: employeeID}
	}
	snap.Latitude = in.Latitude
	snap.Longitude = in.Longitude
	snap.UpdatedAt = uc.now()
	if err := uc.repo.Save(ctx, snap); err != nil {
		return nil, err
	}
	out := toLocationResponse(snap)
	uc.notifier.Publish(dto.EventLocationUpdate, out)
	return out, nil
}

// List devuelve todas las ubicaciones conocidas.
func (uc *LocationUseCase) List(ctx context.Context) ([]dto.LocationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toLocationResponse(l))
	}
	return out, nil
}

func toLocationResponse(l *entity.LocationSnapshot) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		Latitude:   l.Latitude,
		Longitude:  l.Longitude,
		UpdatedAt:  l.UpdatedAt,
	}
}
