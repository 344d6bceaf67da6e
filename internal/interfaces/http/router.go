package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/attendance-tracker/internal/application/attendance"
	"github.com/jhoicas/attendance-tracker/internal/application/auth"
	"github.com/jhoicas/attendance-tracker/internal/application/report"
	"github.com/jhoicas/attendance-tracker/internal/application/usecase"
	"github.com/jhoicas/attendance-tracker/internal/infrastructure/realtime"
	"github.com/jhoicas/attendance-tracker/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmployeeUC   *usecase.EmployeeUseCase
	AttendanceUC *attendance.AttendanceUseCase
	LocationUC   *usecase.LocationUseCase
	ReportUC     *report.ReportUseCase
	AuthUC       *auth.AuthUseCase
	Hub          *realtime.Hub
	RequireToken bool
	Log          *logger.Logger
}

// Router registra las rutas de la API y el canal en vivo.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	api.Post("/login", authHandler.Login)

	// Panel admin
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, log)
	employees := api.Group("/employees")
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Delete("/:id", employeeHandler.Delete)

	// Acciones del empleado: token de sesión opcional (obligatorio con RequireToken)
	session := SessionMiddleware(deps.AuthUC, deps.RequireToken)

	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC, log)
	att := api.Group("/attendance")
	att.Get("/", attendanceHandler.List)
	att.Post("/clockin", session, attendanceHandler.ClockIn)
	att.Post("/clockout", session, attendanceHandler.ClockOut)

	if deps.ReportUC != nil {
		reportHandler := NewReportHandler(deps.ReportUC, log)
		att.Get("/report.pdf", reportHandler.PDF)
		att.Get("/export.xml", reportHandler.XML)
	}

	locationHandler := NewLocationHandler(deps.LocationUC, log)
	locations := api.Group("/locations")
	locations.Get("/", locationHandler.List)
	locations.Post("/update", session, locationHandler.Update)

	if deps.Hub != nil {
		wsHandler := NewWSHandler(deps.Hub, log)
		app.Get("/ws", wsHandler.RequireUpgrade, wsHandler.Serve())
	}
}
