// seed_employees carga empleados desde un CSV usando la misma configuración que la API.
//
// Uso: go run ./cmd/seed_employees [-latin1] [-dry-run] empleados.csv
//
// La primera fila es la cabecera; columnas reconocidas (en cualquier orden):
// id_no, first_name, last_name, department, position, email, password, birth_date, date_hired.
// Con -latin1 el archivo se lee como ISO-8859-1 (exportaciones de Excel en Windows).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/attendance-tracker/internal/application/auth"
	"github.com/jhoicas/attendance-tracker/internal/application/usecase"
	"github.com/jhoicas/attendance-tracker/internal/domain"
	"github.com/jhoicas/attendance-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/attendance-tracker/pkg/config"
	"github.com/jhoicas/attendance-tracker/pkg/logger"
)

func main() {
	latin1 := flag.Bool("latin1", false, "leer el CSV como ISO-8859-1")
	dryRun := flag.Bool("dry-run", false, "solo validar el archivo, sin escribir")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: seed_employees [-latin1] [-dry-run] empleados.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: "seed_employees"})

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	rows, err := readEmployees(f, *latin1)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}
	log.Info().Int("filas", len(rows)).Msg("CSV leído")
	if *dryRun {
		return
	}
	if cfg.App.StoreDriver != config.StoreDriverPostgres {
		log.Fatal().Str("driver", cfg.App.StoreDriver).Msg("seed_employees requiere STORE_DRIVER=postgres")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if cfg.DB.AutoMigrate {
		if _, err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	var creds auth.Credentials = auth.NewPlainCredentials()
	if cfg.Auth.HashPasswords {
		creds = auth.NewBcryptCredentials(0)
	}
	uc := usecase.NewEmployeeUseCase(postgres.NewEmployeeRepository(pool), creds, nil)

	var created, skipped int
	for i, in := range rows {
		_, err := uc.Create(ctx, in)
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			skipped++
			log.Warn().Int("fila", i+2).Str("email", in.Email).Msg("email ya registrado, se omite")
		default:
			log.Error().Err(err).Int("fila", i+2).Str("email", in.Email).Msg("no se pudo crear el empleado")
		}
	}
	log.Info().Int("creados", created).Int("omitidos", skipped).Msg("seed terminado")
}
