package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeoPointRequest coordenadas enviadas por el cliente. Punteros para distinguir
// "ausente" de cero.
type GeoPointRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Valid indica si ambas coordenadas están presentes.
func (g *GeoPointRequest) Valid() bool {
	return g != nil && g.Latitude != nil && g.Longitude != nil
}

// ClockRequest cuerpo de clock-in y clock-out.
type ClockRequest struct {
	EmployeeID string           `json:"employeeId"`
	Location   *GeoPointRequest `json:"location"`
}

// GeoPointResponse coordenadas en respuestas.
type GeoPointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AttendanceResponse salida de una jornada. clock_out null = jornada abierta.
type AttendanceResponse struct {
	ID          string            `json:"id"`
	EmployeeID  string            `json:"employee_id"`
	ClockIn     time.Time         `json:"clock_in"`
	LocationIn  GeoPointResponse  `json:"location_in"`
	ClockOut    *time.Time        `json:"clock_out"`
	LocationOut *GeoPointResponse `json:"location_out"`
	HoursWorked *decimal.Decimal  `json:"hours_worked"`
}
