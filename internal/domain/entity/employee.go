package entity

import "time"

// Employee perfil de un empleado. Lo crea y elimina un administrador; no se modifica.
type Employee struct {
	ID         string
	IDNo       string // número de empleado visible
	FirstName  string
	LastName   string
	Department string
	Position   string
	Email      string // único
	Password   string // texto plano o hash bcrypt según AUTH_HASH_PASSWORDS
	BirthDate  *time.Time
	DateHired  *time.Time
	CreatedAt  time.Time
}

// FullName nombre y apellido separados por espacio.
func (e *Employee) FullName() string {
	switch {
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
