// Package xmlexport serializa el reporte de asistencia en XML para sistemas de nómina.
package xmlexport

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/attendance-tracker/internal/application/dto"
	"github.com/jhoicas/attendance-tracker/internal/application/ports"
)

var _ ports.AttendanceXMLExporter = (*EtreeAttendanceExporter)(nil)

// Namespace del documento de intercambio.
const NsAttendance = "urn:attendance-tracker:attendance:1"

// EtreeAttendanceExporter implementa ports.AttendanceXMLExporter con beevik/etree.
type EtreeAttendanceExporter struct{}

// NewEtreeAttendanceExporter crea el exportador.
func NewEtreeAttendanceExporter() *EtreeAttendanceExporter {
	return &EtreeAttendanceExporter{}
}

// ExportAttendanceXML genera:
//
//	<AttendanceReport generatedAt=".." records="N" openSessions="M" totalHours="H">
//	  <Record id="..">
//	    <Employee id=".." idNo="..">Nombre</Employee>
//	    <ClockIn latitude=".." longitude="..">RFC3339</ClockIn>
//	    <ClockOut latitude=".." longitude="..">RFC3339</ClockOut>  (solo si está cerrada)
//	    <HoursWorked>8.00</HoursWorked>
//	  </Record>
//	</AttendanceReport>
func (e *EtreeAttendanceExporter) ExportAttendanceXML(_ context.Context, rep *dto.AttendanceReport) ([]byte, error) {
	if rep == nil {
		return nil, fmt.Errorf("xmlexport: reporte nil")
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("AttendanceReport")
	root.CreateAttr("xmlns", NsAttendance)
	root.CreateAttr("generatedAt", rep.GeneratedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("records", strconv.Itoa(len(rep.Rows)))
	root.CreateAttr("openSessions", strconv.Itoa(rep.OpenSessions))
	root.CreateAttr("totalHours", rep.TotalHours.StringFixed(2))

	for _, r := range rep.Rows {
		rec := root.CreateElement("Record")
		rec.CreateAttr("id", r.RecordID)

		emp := rec.CreateElement("Employee")
		emp.CreateAttr("id", r.EmployeeID)
		if r.EmployeeIDNo != "" {
			emp.CreateAttr("idNo", r.EmployeeIDNo)
		}
		if r.Department != "" {
			emp.CreateAttr("department", r.Department)
		}
		emp.SetText(r.EmployeeName)

		writeStamp(rec, "ClockIn", r.ClockIn, r.LocationIn)
		if r.ClockOut != nil {
			var loc dto.GeoPointResponse
			if r.LocationOut != nil {
				loc = *r.LocationOut
			}
			writeStamp(rec, "ClockOut", *r.ClockOut, loc)
		}
		if r.HoursWorked != nil {
			rec.CreateElement("HoursWorked").SetText(r.HoursWorked.StringFixed(2))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlexport: serializar: %w", err)
	}
	return out, nil
}

func writeStamp(parent *etree.Element, tag string, at time.Time, loc dto.GeoPointResponse) {
	el := parent.CreateElement(tag)
	el.CreateAttr("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	el.CreateAttr("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	el.SetText(at.UTC().Format(time.RFC3339))
}
