// Package pdf genera el reporte de asistencia para el panel admin.
//
// Layout de la página A4 (horizontal):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título                 │  Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Empleado | Depto | Entrada | Salida | Horas     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: jornadas / abiertas / horas                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/attendance-tracker/internal/application/dto"
	"github.com/jhoicas/attendance-tracker/internal/application/ports"
)

var _ ports.AttendancePDFRenderer = (*MarotoAttendanceReport)(nil)

const timeLayout = "02/01/2006 15:04"

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorOpen    = &props.Color{Red: 190, Green: 90, Blue: 0}
)

// MarotoAttendanceReport implementa ports.AttendancePDFRenderer usando Maroto v2.
type MarotoAttendanceReport struct {
	loc *time.Location
}

// NewMarotoAttendanceReport construye el generador. loc nil imprime las horas en UTC.
func NewMarotoAttendanceReport(loc *time.Location) *MarotoAttendanceReport {
	if loc == nil {
		loc = time.UTC
	}
	return &MarotoAttendanceReport{loc: loc}
}

// RenderAttendancePDF genera el PDF y devuelve sus bytes.
func (g *MarotoAttendanceReport) RenderAttendancePDF(_ context.Context, rep *dto.AttendanceReport) ([]byte, error) {
	if rep == nil {
		return nil, fmt.Errorf("pdf: reporte nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(rep.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(rep.Rows)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rep))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoAttendanceReport) headerRow(rep *dto.AttendanceReport) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(rep.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+rep.GeneratedAt.In(g.loc).Format(timeLayout), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Left),
		h("Empleado", 3, align.Left),
		h("Departamento", 2, align.Left),
		h("Entrada", 2, align.Center),
		h("Salida", 2, align.Center),
		h("Horas", 2, align.Right),
	)
}

func (g *MarotoAttendanceReport) tableRows(rows []dto.AttendanceReportRow) []core.Row {
	out := make([]core.Row, 0, len(rows))
	cell := func(s string, size int, a align.Type, c *props.Color) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Color: c}))
	}
	for _, r := range rows {
		name := r.EmployeeName
		if name == "" {
			name = "(eliminado) " + r.EmployeeID
		}
		clockOut, hours := "abierta", "-"
		outColor := colorOpen
		if r.ClockOut != nil {
			clockOut = r.ClockOut.In(g.loc).Format(timeLayout)
			outColor = nil
		}
		if r.HoursWorked != nil {
			hours = r.HoursWorked.StringFixed(2)
		}
		out = append(out, row.New(6).Add(
			cell(nonEmpty(r.EmployeeIDNo, "-"), 1, align.Left, nil),
			cell(name, 3, align.Left, nil),
			cell(nonEmpty(r.Department, "-"), 2, align.Left, nil),
			cell(r.ClockIn.In(g.loc).Format(timeLayout), 2, align.Center, nil),
			cell(clockOut, 2, align.Center, outColor),
			cell(hours, 2, align.Right, nil),
		))
	}
	return out
}

func totalsRow(rep *dto.AttendanceReport) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	return row.New(10).Add(
		col.New(4).Add(label(fmt.Sprintf("Jornadas: %d", len(rep.Rows)))),
		col.New(4).Add(label(fmt.Sprintf("Abiertas: %d", rep.OpenSessions))),
		col.New(4).Add(label("Total horas: "+rep.TotalHours.StringFixed(2))),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
