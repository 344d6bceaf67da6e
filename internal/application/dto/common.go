package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// Nombres de eventos del canal en vivo. El visor refresca la lista correspondiente.
const (
	EventEmployeeUpdate   = "employeeUpdate"   // -> empleados
	EventEmployeeDeleted  = "employeeDeleted"  // -> empleados
	EventAttendanceUpdate = "attendanceUpdate" // -> asistencia
	EventLocationUpdate   = "locationUpdate"   // -> ubicaciones
)
