package dto

import "time"

// UpdateLocationRequest posición reportada por la app del empleado.
type UpdateLocationRequest struct {
	EmployeeID string  `json:"employeeId"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// LocationResponse última ubicación conocida de un empleado.
type LocationResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	UpdatedAt  time.Time `json:"updated_at"`
}
