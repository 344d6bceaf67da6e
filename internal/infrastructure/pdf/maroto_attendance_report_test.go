package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/attendance-tracker/internal/application/dto"
	"github.com/jhoicas/attendance-tracker/internal/infrastructure/pdf"
)

func TestRenderAttendancePDF(t *testing.T) {
	in := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	out := in.Add(8 * time.Hour)
	hours := decimal.NewFromInt(8)

	rep := &dto.AttendanceReport{
		Title:       "Reporte de asistencia",
		GeneratedAt: in,
		Rows: []dto.AttendanceReportRow{
			{RecordID: "r1", EmployeeID: "emp-1", EmployeeName: "Ana Reyes", ClockIn: in, ClockOut: &out, HoursWorked: &hours},
			{RecordID: "r2", EmployeeID: "borrado", ClockIn: in.Add(24 * time.Hour)},
		},
		TotalHours:   hours,
		OpenSessions: 1,
	}

	doc, err := pdf.NewMarotoAttendanceReport(nil).RenderAttendancePDF(context.Background(), rep)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestRenderAttendancePDF_ReporteNil(t *testing.T) {
	_, err := pdf.NewMarotoAttendanceReport(nil).RenderAttendancePDF(context.Background(), nil)
	assert.Error(t, err)
}
