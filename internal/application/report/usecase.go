package report

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/attendance-tracker/internal/application/dto"
	"github.com/jhoicas/attendance-tracker/internal/application/ports"
	"github.com/jhoicas/attendance-tracker/internal/domain/entity"
	"github.com/jhoicas/attendance-tracker/internal/domain/repository"
)

// ReportUseCase arma el reporte de asistencia y lo entrega en PDF o XML.
type ReportUseCase struct {
	employeeRepo   repository.EmployeeRepository
	attendanceRepo repository.AttendanceRepository
	pdf            ports.AttendancePDFRenderer
	xml            ports.AttendanceXMLExporter
	now            func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	employeeRepo repository.EmployeeRepository,
	attendanceRepo repository.AttendanceRepository,
	pdf ports.AttendancePDFRenderer,
	xml ports.AttendanceXMLExporter,
) *ReportUseCase {
	return &ReportUseCase{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		pdf:            pdf,
		xml:            xml,
		now:            time.Now,
	}
}

// Build arma el reporte: una fila por jornada, ordenadas por clock_in ascendente.
// employeeID vacío incluye a todos los empleados.
func (uc *ReportUseCase) Build(ctx context.Context, employeeID string) (*dto.AttendanceReport, error) {
	employees, err := uc.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	var records []*entity.AttendanceRecord
	if employeeID = strings.TrimSpace(employeeID); employeeID != "" {
		records, err = uc.attendanceRepo.ListByEmployee(ctx, employeeID)
	} else {
		records, err = uc.attendanceRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].ClockIn.Before(records[j].ClockIn) })

	title := cases.Title(language.Und)
	rep := &dto.AttendanceReport{
		Title:       "Reporte de asistencia",
		GeneratedAt: uc.now(),
		Rows:        make([]dto.AttendanceReportRow, 0, len(records)),
		TotalHours:  decimal.Zero,
	}
	for _, r := range records {
		row := dto.AttendanceReportRow{
			RecordID:    r.ID,
			EmployeeID:  r.EmployeeID,
			ClockIn:     r.ClockIn,
			LocationIn:  dto.GeoPointResponse{Latitude: r.LocationIn.Latitude, Longitude: r.LocationIn.Longitude},
			ClockOut:    r.ClockOut,
			HoursWorked: r.HoursWorked,
		}
		if r.LocationOut != nil {
			row.LocationOut = &dto.GeoPointResponse{Latitude: r.LocationOut.Latitude, Longitude: r.LocationOut.Longitude}
		}
		if emp, ok := byID[r.EmployeeID]; ok {
			row.EmployeeIDNo = emp.IDNo
			row.EmployeeName = title.String(emp.FullName())
			row.Department = emp.Department
		}
		if r.IsOpen() {
			rep.OpenSessions++
		}
		if r.HoursWorked != nil {
			rep.TotalHours = rep.TotalHours.Add(*r.HoursWorked)
		}
		rep.Rows = append(rep.Rows, row)
	}
	return rep, nil
}

// PDF genera el reporte en PDF.
func (uc *ReportUseCase) PDF(ctx context.Context, employeeID string) ([]byte, error) {
	rep, err := uc.Build(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.RenderAttendancePDF(ctx, rep)
}

// XML exporta el reporte en XML.
func (uc *ReportUseCase) XML(ctx context.Context, employeeID string) ([]byte, error) {
	rep, err := uc.Build(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return uc.xml.ExportAttendanceXML(ctx, rep)
}
