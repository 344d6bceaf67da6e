package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/attendance-tracker/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-unit-tests"
	testEmployeeID = "00000000-0000-0000-0000-000000000001"
	testEmail      = "a@x.com"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmployeeID, testEmail, "attendance-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testEmployeeID, claims.EmployeeID)
	assert.Equal(t, testEmployeeID, claims.Subject)
	assert.Equal(t, testEmail, claims.Email)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmployeeID, testEmail, "attendance-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmployeeID, testEmail, "attendance-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestSinSecret(t *testing.T) {
	_, err := pkgjwt.Generate("", testEmployeeID, testEmail, "x", 60)
	assert.ErrorIs(t, err, pkgjwt.ErrNoSecret)

	_, err = pkgjwt.Parse("", "abc")
	assert.ErrorIs(t, err, pkgjwt.ErrNoSecret)
}
