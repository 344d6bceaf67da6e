package ports

import (
	"context"

	"github.com/jhoicas/attendance-tracker/internal/application/dto"
)

// AttendancePDFRenderer genera la representación PDF del reporte de asistencia.
type AttendancePDFRenderer interface {
	RenderAttendancePDF(ctx context.Context, report *dto.AttendanceReport) ([]byte, error)
}

// AttendanceXMLExporter serializa el reporte en XML para sistemas de nómina.
type AttendanceXMLExporter interface {
	ExportAttendanceXML(ctx context.Context, report *dto.AttendanceReport) ([]byte, error)
}
