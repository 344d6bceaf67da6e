package auth

import (
	"context"
	"errors"

	"github.com/jhoicas/attendance-tracker/internal/application/dto"
	"github.com/jhoicas/attendance-tracker/internal/domain"
	"github.com/jhoicas/attendance-tracker/internal/domain/repository"
	"github.com/jhoicas/attendance-tracker/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login de empleados creados desde el panel admin.
type AuthUseCase struct {
	employeeRepo repository.EmployeeRepository
	credentials  Credentials
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(employeeRepo repository.EmployeeRepository, credentials Credentials, jwtCfg JWTConfig) *AuthUseCase {
	if credentials == nil {
		credentials = NewPlainCredentials()
	}
	return &AuthUseCase{employeeRepo: employeeRepo, credentials: credentials, jwtCfg: jwtCfg}
}

// Login verifica email/password y devuelve el empleado. Si hay secreto JWT incluye un token
// de sesión. Cualquier discrepancia devuelve domain.ErrUnauthorized sin indicar el campo.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrUnauthorized
	}
	emp, err := uc.credentials.Find(ctx, uc.employeeRepo, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrUnauthorized
	}
	out := &dto.LoginResponse{EmployeeResponse: *dto.NewEmployeeResponse(emp)}
	if uc.jwtCfg.Secret != "" {
		token, err := jwt.Generate(uc.jwtCfg.Secret, emp.ID, emp.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil && !errors.Is(err, jwt.ErrNoSecret) {
			return nil, err
		}
		out.Token = token
	}
	return out, nil
}

// VerifyToken valida un token de sesión y devuelve el id del empleado.
func (uc *AuthUseCase) VerifyToken(token string) (string, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return "", domain.ErrUnauthorized
	}
	return claims.EmployeeID, nil
}

// TokensEnabled indica si se emiten y verifican tokens de sesión.
func (uc *AuthUseCase) TokensEnabled() bool {
	return uc.jwtCfg.Secret != ""
}
