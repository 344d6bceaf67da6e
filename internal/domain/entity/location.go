package entity

import "time"

// LocationSnapshot última posición conocida de un empleado (una por empleado).
type LocationSnapshot struct {
	ID         string
	EmployeeID string
	Latitude   float64
	Longitude  float64
	UpdatedAt  time.Time
}
