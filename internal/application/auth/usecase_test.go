package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/attendance-tracker/internal/application/auth"
	"github.com/jhoicas/attendance-tracker/internal/application/dto"
	"github.com/jhoicas/attendance-tracker/internal/domain"
	"github.com/jhoicas/attendance-tracker/internal/domain/entity"
	"github.com/jhoicas/attendance-tracker/internal/infrastructure/memory"
)

func seed(t *testing.T, store *memory.Store, creds auth.Credentials) *entity.Employee {
	t.Helper()
	hash, err := creds.Hash("s3cret")
	require.NoError(t, err)
	emp := &entity.Employee{ID: "emp-1", FirstName: "Ana", LastName: "Reyes", Email: "ana@acme.test", Password: hash}
	require.NoError(t, store.Employees().Create(context.Background(), emp))
	return emp
}

func TestLogin_TextoPlano(t *testing.T) {
	store := memory.NewStore()
	seed(t, store, auth.NewPlainCredentials())
	uc := auth.NewAuthUseCase(store.Employees(), nil, auth.JWTConfig{})

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.test", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", out.ID)
	assert.Empty(t, out.Token, "sin secreto no se emite token")
	assert.False(t, uc.TokensEnabled())
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	store := memory.NewStore()
	seed(t, store, auth.NewPlainCredentials())
	uc := auth.NewAuthUseCase(store.Employees(), nil, auth.JWTConfig{})

	cases := map[string]dto.LoginRequest{
		"password incorrecto":  {Email: "ana@acme.test", Password: "otra"},
		"email desconocido":    {Email: "nadie@acme.test", Password: "s3cret"},
		"email con mayúsculas": {Email: "Ana@acme.test", Password: "s3cret"},
		"vacío":                {},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Login(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestLogin_Bcrypt(t *testing.T) {
	store := memory.NewStore()
	creds := auth.NewBcryptCredentials(4)
	seed(t, store, creds)
	uc := auth.NewAuthUseCase(store.Employees(), creds, auth.JWTConfig{})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.test", Password: "s3cret"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.test", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmiteTokenVerificable(t *testing.T) {
	store := memory.NewStore()
	seed(t, store, auth.NewPlainCredentials())
	uc := auth.NewAuthUseCase(store.Employees(), nil, auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "attendance-tracker"})

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.test", Password: "s3cret"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.True(t, uc.TokensEnabled())

	id, err := uc.VerifyToken(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", id)

	_, err = uc.VerifyToken("basura")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
