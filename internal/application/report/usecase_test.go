package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/attendance-tracker/internal/application/dto"
	"github.com/jhoicas/attendance-tracker/internal/application/report"
	"github.com/jhoicas/attendance-tracker/internal/domain/entity"
	"github.com/jhoicas/attendance-tracker/internal/infrastructure/memory"
)

type stubRenderer struct {
	got *dto.AttendanceReport
}

func (s *stubRenderer) RenderAttendancePDF(_ context.Context, r *dto.AttendanceReport) ([]byte, error) {
	s.got = r
	return []byte("%PDF-stub"), nil
}

func (s *stubRenderer) ExportAttendanceXML(_ context.Context, r *dto.AttendanceReport) ([]byte, error) {
	s.got = r
	return []byte("<xml/>"), nil
}

func seedStore(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Employees().Create(ctx, &entity.Employee{
		ID: "emp-1", IDNo: "E-001", FirstName: "ana maría", LastName: "reyes", Department: "Ventas", Email: "ana@acme.test",
	}))

	base := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	closed := &entity.AttendanceRecord{ID: "r2", EmployeeID: "emp-1", ClockIn: base.Add(24 * time.Hour)}
	closed.Close(closed.ClockIn.Add(7*time.Hour+30*time.Minute), entity.GeoPoint{})
	closedEarlier := &entity.AttendanceRecord{ID: "r1", EmployeeID: "emp-1", ClockIn: base}
	closedEarlier.Close(base.Add(8*time.Hour), entity.GeoPoint{})

	// r3 es huérfano: su empleado ya no existe.
	for _, r := range []*entity.AttendanceRecord{
		closed,
		closedEarlier,
		{ID: "r3", EmployeeID: "borrado", ClockIn: base.Add(48 * time.Hour)},
	} {
		require.NoError(t, store.Attendance().Create(ctx, r))
	}
	return store
}

func TestReportUseCase_Build(t *testing.T) {
	store := seedStore(t)
	uc := report.NewReportUseCase(store.Employees(), store.Attendance(), nil, nil)

	rep, err := uc.Build(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, rep.Rows, 3)
	assert.Equal(t, []string{"r1", "r2", "r3"}, []string{rep.Rows[0].RecordID, rep.Rows[1].RecordID, rep.Rows[2].RecordID})
	assert.Equal(t, "Ana María Reyes", rep.Rows[0].EmployeeName)
	assert.Equal(t, "E-001", rep.Rows[0].EmployeeIDNo)
	assert.Empty(t, rep.Rows[2].EmployeeName, "registro huérfano")
	assert.Equal(t, "15.5", rep.TotalHours.String())
	assert.Equal(t, 1, rep.OpenSessions)
}

func TestReportUseCase_BuildPorEmpleado(t *testing.T) {
	store := seedStore(t)
	uc := report.NewReportUseCase(store.Employees(), store.Attendance(), nil, nil)

	rep, err := uc.Build(context.Background(), "borrado")
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)
	assert.True(t, rep.TotalHours.IsZero())
}

func TestReportUseCase_DelegaEnAdaptadores(t *testing.T) {
	store := seedStore(t)
	stub := &stubRenderer{}
	uc := report.NewReportUseCase(store.Employees(), store.Attendance(), stub, stub)

	pdf, err := uc.PDF(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-stub", string(pdf))
	require.NotNil(t, stub.got)
	assert.Len(t, stub.got.Rows, 2)

	xml, err := uc.XML(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "<xml/>", string(xml))
	assert.Len(t, stub.got.Rows, 3)
}
