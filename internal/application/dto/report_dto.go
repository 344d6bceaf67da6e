package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceReport datos del reporte de asistencia (PDF / XML).
type AttendanceReport struct {
	Title        string
	GeneratedAt  time.Time
	Rows         []AttendanceReportRow
	TotalHours   decimal.Decimal
	OpenSessions int
}

// AttendanceReportRow una jornada con los datos del empleado resueltos.
// EmployeeName queda vacío si el empleado fue eliminado (registro huérfano).
type AttendanceReportRow struct {
	RecordID     string
	EmployeeID   string
	EmployeeIDNo string
	EmployeeName string
	Department   string
	ClockIn      time.Time
	LocationIn   GeoPointResponse
	ClockOut     *time.Time
	LocationOut  *GeoPointResponse
	HoursWorked  *decimal.Decimal
}
