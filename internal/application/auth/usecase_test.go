package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwarehouses/almacenes-api/internal/application/auth"
	"github.com/openwarehouses/almacenes-api/internal/domain"
	"github.com/openwarehouses/almacenes-api/internal/domain/entity"
	"github.com/openwarehouses/almacenes-api/pkg/jwt"
)

type repoPin struct {
	pin string
}

func (r *repoPin) LoadAlmacenes() ([]*entity.Almacen, error) { return nil, nil }
func (r *repoPin) SaveAlmacenes([]*entity.Almacen) error     { return nil }
func (r *repoPin) LoadPin() (string, error)                  { return r.pin, nil }
func (r *repoPin) SavePin(pin string) error {
	r.pin = pin
	return nil
}

func nuevoAuthUC(repo *repoPin) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secreto-de-test",
		ExpMinutes: 5,
		Issuer:     "almacenes-test",
	})
}

func TestEntrar_PinCorrectoEmiteTokenValido(t *testing.T) {
	uc := nuevoAuthUC(&repoPin{pin: "1234"})

	token, err := uc.Entrar("1234")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, jwt.Parse("secreto-de-test", token))
}

func TestEntrar_PinIncorrecto(t *testing.T) {
	uc := nuevoAuthUC(&repoPin{pin: "1234"})

	_, err := uc.Entrar("0000")
	assert.ErrorIs(t, err, domain.ErrPinIncorrecto)
}

func TestCambiarPin_Persiste(t *testing.T) {
	repo := &repoPin{pin: "1234"}
	uc := nuevoAuthUC(repo)

	require.NoError(t, uc.CambiarPin("4321"))
	assert.Equal(t, "4321", repo.pin)

	// El PIN anterior deja de valer.
	_, err := uc.Entrar("1234")
	assert.ErrorIs(t, err, domain.ErrPinIncorrecto)
	_, err = uc.Entrar("4321")
	assert.NoError(t, err)
}

func TestCambiarPin_EnBlanco(t *testing.T) {
	repo := &repoPin{pin: "1234"}
	uc := nuevoAuthUC(repo)

	assert.ErrorIs(t, uc.CambiarPin("   "), domain.ErrPinInvalido)
	assert.Equal(t, "1234", repo.pin)
}
