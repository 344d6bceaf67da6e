package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeoPoint par latitud/longitud reportado por el GPS del dispositivo.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// AttendanceRecord una jornada (intervalo de trabajo) de un empleado.
// ClockOut nil significa jornada abierta. Se cierra una sola vez y nunca se elimina.
type AttendanceRecord struct {
	ID          string
	EmployeeID  string
	ClockIn     time.Time
	LocationIn  GeoPoint
	ClockOut    *time.Time
	LocationOut *GeoPoint
	HoursWorked *decimal.Decimal // calculado al cerrar
}

// IsOpen indica si la jornada no tiene clock-out.
func (r *AttendanceRecord) IsOpen() bool {
	return r.ClockOut == nil
}

// Close marca el clock-out y calcula las horas trabajadas (2 decimales).
// Un reloj que retrocede no produce horas negativas.
func (r *AttendanceRecord) Close(at time.Time, loc GeoPoint) {
	if at.Before(r.ClockIn) {
		at = r.ClockIn
	}
	r.ClockOut = &at
	r.LocationOut = &loc
	hours := decimal.NewFromFloat(at.Sub(r.ClockIn).Hours()).Round(2)
	r.HoursWorked = &hours
}
