package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestReadEmployees_UTF8(t *testing.T) {
	src := "\ufeffemail,password,first_name,last_name,department\n" +
		"ana@acme.test,s3cret,Ana María,Reyes,Ventas\n" +
		"luis@acme.test,x, Luis ,Peña,\n"

	rows, err := readEmployees(strings.NewReader(src), false)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ana María", rows[0].FirstName)
	assert.Equal(t, "Ventas", rows[0].Department)
	assert.Equal(t, "Luis", rows[1].FirstName)
	assert.Empty(t, rows[1].Department)
}

func TestReadEmployees_Latin1(t *testing.T) {
	utf8 := "email,password,last_name\nluis@acme.test,x,Peña\n"
	latin1, err := charmap.ISO8859_1.NewEncoder().String(utf8)
	require.NoError(t, err)

	rows, err := readEmployees(bytes.NewReader([]byte(latin1)), true)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Peña", rows[0].LastName)
}

func TestReadEmployees_Errores(t *testing.T) {
	_, err := readEmployees(strings.NewReader("first_name,last_name\nAna,Reyes\n"), false)
	assert.ErrorContains(t, err, `"email"`)

	_, err = readEmployees(strings.NewReader("email,first_name\nana@acme.test,Ana\n"), false)
	assert.ErrorContains(t, err, `"password"`)

	_, err = readEmployees(strings.NewReader("email,password\nana@acme.test,\n"), false)
	assert.ErrorContains(t, err, "fila 2")
}
