package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/attendance-tracker/internal/application/dto"
)

// readEmployees parsea el CSV; las columnas se ubican por nombre de cabecera.
// email y password son obligatorios en cada fila.
func readEmployees(r io.Reader, latin1 bool) ([]dto.CreateEmployeeRequest, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cabecera: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range []string{"email", "password"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("cabecera: falta la columna %q", required)
		}
	}

	var out []dto.CreateEmployeeRequest
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fila %d: %w", line, err)
		}
		get := func(name string) string {
			if i, ok := col[name]; ok && i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}
		in := dto.CreateEmployeeRequest{
			IDNo:       get("id_no"),
			FirstName:  get("first_name"),
			LastName:   get("last_name"),
			Department: get("department"),
			Position:   get("position"),
			Email:      get("email"),
			Password:   get("password"),
			BirthDate:  get("birth_date"),
			DateHired:  get("date_hired"),
		}
		if in.Email == "" || in.Password == "" {
			return nil, fmt.Errorf("fila %d: email y password son requeridos", line)
		}
		out = append(out, in)
	}
	return out, nil
}
