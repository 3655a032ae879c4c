package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tracksmart-api/internal/application/dto"
	"github.com/tu-usuario/tracksmart-api/internal/domain"
	"github.com/tu-usuario/tracksmart-api/internal/infrastructure/memory"
)

var testJWT = JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "tracksmart-test"}

func seededAuth(t *testing.T) *AuthUseCase {
	t.Helper()
	uc := NewAuthUseCase(memory.NewUserRepository(), testJWT)
	require.NoError(t, uc.SeedOwner("owner@shop.test", "super-secret", "Shop Owner"))
	return uc
}

func TestSeedOwner_EsIdempotente(t *testing.T) {
	uc := seededAuth(t)

	// Un segundo arranque con la misma config no debe fallar ni duplicar.
	require.NoError(t, uc.SeedOwner("owner@shop.test", "otro-password", "Shop Owner"))

	// El password original sigue vigente.
	_, err := uc.Login(dto.LoginRequest{Email: "owner@shop.test", Password: "super-secret"})
	assert.NoError(t, err)
}

func TestSeedOwner_RequiereCredenciales(t *testing.T) {
	uc := NewAuthUseCase(memory.NewUserRepository(), testJWT)
	assert.ErrorIs(t, uc.SeedOwner("", "pass", ""), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.SeedOwner("owner@shop.test", "", ""), domain.ErrInvalidInput)
}

func TestLogin_OK(t *testing.T) {
	uc := seededAuth(t)

	resp, err := uc.Login(dto.LoginRequest{Email: "owner@shop.test", Password: "super-secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "owner", resp.User.Role)
	assert.Equal(t, "owner@shop.test", resp.User.Email)
}

func TestLogin_CredencialesMalas(t *testing.T) {
	uc := seededAuth(t)

	_, err := uc.Login(dto.LoginRequest{Email: "owner@shop.test", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@shop.test", Password: "super-secret"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"email desconocido y password malo deben responder igual")
}
