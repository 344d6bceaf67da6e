package xmlexport_test

import (
	"context"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/attendance-tracker/internal/application/dto"
	"github.com/jhoicas/attendance-tracker/internal/infrastructure/xmlexport"
)

func TestExportAttendanceXML(t *testing.T) {
	in := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	out := in.Add(7*time.Hour + 30*time.Minute)
	hours := decimal.RequireFromString("7.5")

	rep := &dto.AttendanceReport{
		GeneratedAt: in,
		Rows: []dto.AttendanceReportRow{
			{
				RecordID: "r1", EmployeeID: "emp-1", EmployeeIDNo: "E-001", EmployeeName: "Ana & Co",
				ClockIn: in, LocationIn: dto.GeoPointResponse{Latitude: 14.6, Longitude: 121},
				ClockOut: &out, LocationOut: &dto.GeoPointResponse{Latitude: 14.7, Longitude: 121.1},
				HoursWorked: &hours,
			},
			{RecordID: "r2", EmployeeID: "borrado", ClockIn: in},
		},
		TotalHours:   hours,
		OpenSessions: 1,
	}

	raw, err := xmlexport.NewEtreeAttendanceExporter().ExportAttendanceXML(context.Background(), rep)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(raw))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "AttendanceReport", root.Tag)
	assert.Equal(t, "2", root.SelectAttrValue("records", ""))
	assert.Equal(t, "1", root.SelectAttrValue("openSessions", ""))
	assert.Equal(t, "7.50", root.SelectAttrValue("totalHours", ""))

	records := root.SelectElements("Record")
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "Ana & Co", first.SelectElement("Employee").Text())
	assert.Equal(t, "2025-03-03T08:00:00Z", first.SelectElement("ClockIn").Text())
	assert.Equal(t, "14.7", first.SelectElement("ClockOut").SelectAttrValue("latitude", ""))
	assert.Equal(t, "7.50", first.SelectElement("HoursWorked").Text())

	second := records[1]
	assert.Nil(t, second.SelectElement("ClockOut"), "jornada abierta sin ClockOut")
	assert.Nil(t, second.SelectElement("HoursWorked"))
}
