package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/attendance-tracker/internal/domain"
	"github.com/jhoicas/attendance-tracker/internal/domain/entity"
	"github.com/jhoicas/attendance-tracker/internal/domain/repository"
	"github.com/jhoicas/attendance-tracker/internal/infrastructure/memory"
)

func TestEmployeeRepo_EmailUnico(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Employees()

	require.NoError(t, repo.Create(ctx, &entity.Employee{ID: "e1", Email: "a@x.com", Password: "p"}))
	err := repo.Create(ctx, &entity.Employee{ID: "e2", Email: "a@x.com", Password: "q"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEmployeeRepo_FindByCredentials_CoincidenciaExacta(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Employees()
	require.NoError(t, repo.Create(ctx, &entity.Employee{ID: "e1", Email: "a@x.com", Password: "p"}))

	emp, err := repo.FindByCredentials(ctx, "a@x.com", "p")
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.Equal(t, "e1", emp.ID)

	for _, c := range []struct{ email, password string }{
		{"a@x.com", "wrong"},
		{"b@x.com", "p"},
		{"A@x.com", "p"},
	} {
		emp, err := repo.FindByCredentials(ctx, c.email, c.password)
		require.NoError(t, err)
		assert.Nil(t, emp, "no debe haber match para %s/%s", c.email, c.password)
	}
}

func TestEmployeeRepo_DeleteDesconocidoNoFalla(t *testing.T) {
	repo := memory.NewStore().Employees()
	assert.NoError(t, repo.Delete(context.Background(), "no-existe"))
}

func TestEmployeeRepo_DeleteNoBorraEnCascada(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Employees().Create(ctx, &entity.Employee{ID: "e1", Email: "a@x.com", Password: "p"}))
	require.NoError(t, store.Attendance().Create(ctx, &entity.AttendanceRecord{ID: "r1", EmployeeID: "e1", ClockIn: time.Now()}))
	require.NoError(t, store.Locations().Save(ctx, &entity.LocationSnapshot{ID: "l1", EmployeeID: "e1", Latitude: 1, Longitude: 2}))

	require.NoError(t, store.Employees().Delete(ctx, "e1"))

	emps, _ := store.Employees().List(ctx)
	recs, _ := store.Attendance().List(ctx)
	locs, _ := store.Locations().List(ctx)
	assert.Empty(t, emps)
	assert.Len(t, recs, 1, "la asistencia huérfana se conserva")
	assert.Len(t, locs, 1, "la ubicación huérfana se conserva")
}

func TestAttendanceRepo_FindOpenDevuelveLaMasReciente(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Attendance()
	t0 := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &entity.AttendanceRecord{ID: "old", EmployeeID: "e1", ClockIn: t0}))
	require.NoError(t, repo.Create(ctx, &entity.AttendanceRecord{ID: "new", EmployeeID: "e1", ClockIn: t0.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entity.AttendanceRecord{ID: "other", EmployeeID: "e2", ClockIn: t0.Add(2 * time.Hour)}))

	open, err := repo.FindOpen(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, "new", open.ID)

	none, err := repo.FindOpen(ctx, "e3")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestAttendanceRepo_CloseRegistroInexistenteOCerrado(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Attendance()
	t0 := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	err := repo.Close(ctx, &entity.AttendanceRecord{ID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	rec := &entity.AttendanceRecord{ID: "r1", EmployeeID: "e1", ClockIn: t0}
	require.NoError(t, repo.Create(ctx, rec))
	rec.Close(t0.Add(8*time.Hour), entity.GeoPoint{Latitude: 1, Longitude: 2})
	require.NoError(t, repo.Close(ctx, rec))
	assert.ErrorIs(t, repo.Close(ctx, rec), domain.ErrNotFound, "una jornada se cierra una sola vez")
}

func TestLocationRepo_SaveDosVecesDejaUnaFila(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Locations()

	require.NoError(t, repo.Save(ctx, &entity.LocationSnapshot{ID: "l1", EmployeeID: "e1", Latitude: 1, Longitude: 1}))
	second := &entity.LocationSnapshot{ID: "l2", EmployeeID: "e1", Latitude: 2, Longitude: 3}
	require.NoError(t, repo.Save(ctx, second))
	assert.Equal(t, "l1", second.ID, "el llamador recibe el id almacenado")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "l1", list[0].ID, "se sobreescribe en su lugar")
	assert.Equal(t, 2.0, list[0].Latitude)
	assert.Equal(t, 3.0, list[0].Longitude)
}

func TestStore_RunForEmployeeRespetaContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := memory.NewStore().RunForEmployee(ctx, "e1", func(_ repository.AttendanceRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
