package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/attendance-tracker/pkg/config"
)

func TestLoad_PortHistoricoYOverride(t *testing.T) {
	t.Setenv("PORT", "4000")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.HTTP.Port)

	t.Setenv("HTTP_PORT", "8081")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.HTTP.Port, "HTTP_PORT tiene prioridad sobre PORT")
	assert.Equal(t, "0.0.0.0:8081", cfg.HTTP.Addr())
}

func TestLoad_DriverYPoliticaValidos(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("ATTENDANCE_OPEN_SESSION_POLICY", "reject")
	t.Setenv("AUTH_HASH_PASSWORDS", "true")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StoreDriverMemory, cfg.App.StoreDriver)
	assert.Equal(t, "reject", cfg.Attendance.OpenSessionPolicy)
	assert.True(t, cfg.Auth.HashPasswords)
}

func TestLoad_PoliticaInvalida(t *testing.T) {
	t.Setenv("ATTENDANCE_OPEN_SESSION_POLICY", "whatever")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_TokenObligatorioSinSecret(t *testing.T) {
	t.Setenv("AUTH_REQUIRE_TOKEN", "true")
	t.Setenv("JWT_SECRET", "")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "employee_tracker", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/employee_tracker?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
