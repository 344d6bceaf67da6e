package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/attendance-tracker/docs"
	"github.com/jhoicas/attendance-tracker/internal/application/attendance"
	"github.com/jhoicas/attendance-tracker/internal/application/auth"
	"github.com/jhoicas/attendance-tracker/internal/application/report"
	"github.com/jhoicas/attendance-tracker/internal/application/usecase"
	"github.com/jhoicas/attendance-tracker/internal/domain/repository"
	"github.com/jhoicas/attendance-tracker/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/attendance-tracker/internal/infrastructure/pdf"
	"github.com/jhoicas/attendance-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/attendance-tracker/internal/infrastructure/realtime"
	"github.com/jhoicas/attendance-tracker/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/attendance-tracker/internal/interfaces/http"
	"github.com/jhoicas/attendance-tracker/pkg/config"
	"github.com/jhoicas/attendance-tracker/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// stores repos y runner de la unidad de trabajo según STORE_DRIVER.
type stores struct {
	employees  repository.EmployeeRepository
	attendance repository.AttendanceRepository
	locations  repository.LocationRepository
	tx         attendance.TxRunner
	close      func()
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.App.StoreDriver == config.StoreDriverMemory {
		log.Warn().Msg("STORE_DRIVER=memory: los datos se pierden al reiniciar")
		m := memory.NewStore()
		return &stores{
			employees:  m.Employees(),
			attendance: m.Attendance(),
			locations:  m.Locations(),
			tx:         m,
			close:      func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Int("aplicadas", applied).Msg("migraciones")
	}
	pg := postgres.NewStore(pool)
	return &stores{
		employees:  pg.Employees,
		attendance: pg.Attendance,
		locations:  pg.Locations,
		tx:         pg.Tx,
		close:      pool.Close,
	}, nil
}

// @title                       Attendance Tracker API
// @version                     1.0
// @description                 Control de asistencia con GPS: empleados, marcaciones, ubicación en vivo y reportes.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.App.StoreDriver).
		Str("policy", cfg.Attendance.OpenSessionPolicy).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer st.close()

	hub := realtime.NewHub(cfg.Realtime.SendBuffer, log)

	var creds auth.Credentials = auth.NewPlainCredentials()
	if cfg.Auth.HashPasswords {
		creds = auth.NewBcryptCredentials(0)
	}

	employeeUC := usecase.NewEmployeeUseCase(st.employees, creds, hub)
	locationUC := usecase.NewLocationUseCase(st.locations, hub)
	attendanceUC := attendance.NewAttendanceUseCase(st.tx, st.attendance, hub,
		attendance.WithPolicy(attendance.ParsePolicy(cfg.Attendance.OpenSessionPolicy)),
	)
	reportUC := report.NewReportUseCase(st.employees, st.attendance,
		infrapdf.NewMarotoAttendanceReport(time.Local),
		xmlexport.NewEtreeAttendanceExporter(),
	)
	authUC := auth.NewAuthUseCase(st.employees, creds, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if !authUC.TokensEnabled() {
		log.Warn().Msg("JWT_SECRET vacío: el login no emite token de sesión")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Attendance Tracker API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Front-ends estáticos: panel admin y app del empleado.
	app.Static("/admin", cfg.Static.AdminDir)
	app.Static("/employee", cfg.Static.EmployeeDir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmployeeUC:   employeeUC,
		AttendanceUC: attendanceUC,
		LocationUC:   locationUC,
		ReportUC:     reportUC,
		AuthUC:       authUC,
		Hub:          hub,
		RequireToken: cfg.Auth.RequireToken,
		Log:          log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
