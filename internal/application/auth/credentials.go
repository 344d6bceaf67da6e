package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/attendance-tracker/internal/domain/entity"
	"github.com/jhoicas/attendance-tracker/internal/domain/repository"
)

// Credentials estrategia de almacenamiento y verificación de contraseñas.
type Credentials interface {
	// Hash transforma la contraseña antes de persistirla.
	Hash(password string) (string, error)
	// Find devuelve el empleado cuyas credenciales coinciden, o (nil, nil).
	Find(ctx context.Context, repo repository.EmployeeRepository, email, password string) (*entity.Employee, error)
}

// PlainCredentials guarda y compara la contraseña en texto plano (comportamiento
// heredado; defecto de seguridad conocido, solo para despliegues internos).
type PlainCredentials struct{}

// NewPlainCredentials construye la estrategia en texto plano.
func NewPlainCredentials() PlainCredentials { return PlainCredentials{} }

func (PlainCredentials) Hash(password string) (string, error) { return password, nil }

func (PlainCredentials) Find(ctx context.Context, repo repository.EmployeeRepository, email, password string) (*entity.Employee, error) {
	return repo.FindByCredentials(ctx, email, password)
}

// BcryptCredentials guarda hashes bcrypt y compara con CompareHashAndPassword.
type BcryptCredentials struct {
	cost int
}

// NewBcryptCredentials construye la estrategia bcrypt; cost <= 0 usa bcrypt.DefaultCost.
func NewBcryptCredentials(cost int) BcryptCredentials {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return BcryptCredentials{cost: cost}
}

func (b BcryptCredentials) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (b BcryptCredentials) Find(ctx context.Context, repo repository.EmployeeRepository, email, password string) (*entity.Employee, error) {
	emp, err := repo.FindByEmail(ctx, email)
	if err != nil || emp == nil {
		return nil, err
	}
	// Hash inválido (p. ej. filas anteriores en texto plano) cuenta como no coincidencia.
	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(password)); err != nil {
		return nil, nil
	}
	return emp, nil
}
