// Package auth implementa el modo edición protegido por PIN: el PIN se
// intercambia por un token JWT de sesión que las rutas de mutación exigen.
package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/openwarehouses/almacenes-api/internal/domain"
	"github.com/openwarehouses/almacenes-api/internal/domain/repository"
	"github.com/openwarehouses/almacenes-api/pkg/jwt"
)

// JWTConfig parámetros de emisión del token de edición.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase valida el PIN contra el almacenamiento y emite tokens de
// sesión. El PIN viaja y se persiste en claro porque el formato de archivo
// heredado lo exige (migración con pin "1234" legible).
type AuthUseCase struct {
	repo repository.AlmacenRepository
	cfg  JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(repo repository.AlmacenRepository, cfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{repo: repo, cfg: cfg}
}

// Entrar valida el PIN y devuelve el token del modo edición.
func (uc *AuthUseCase) Entrar(pin string) (string, error) {
	actual, err := uc.repo.LoadPin()
	if err != nil {
		return "", fmt.Errorf("cargar pin: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(pin), []byte(actual)) != 1 {
		return "", domain.ErrPinIncorrecto
	}
	return jwt.Generate(uc.cfg.Secret, uc.cfg.Issuer, uc.cfg.ExpMinutes)
}

// CambiarPin guarda un PIN nuevo no vacío preservando los almacenes.
func (uc *AuthUseCase) CambiarPin(nuevoPin string) error {
	if strings.TrimSpace(nuevoPin) == "" {
		return domain.ErrPinInvalido
	}
	if err := uc.repo.SavePin(nuevoPin); err != nil {
		return fmt.Errorf("guardar pin: %w", err)
	}
	return nil
}
