package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/dolphnet-api/pkg/jwt"
)

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testSessionID = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "dolphnet-test"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSessionID, "2", "logistics", testIssuer, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sid, identityID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testSessionID, sid)
	assert.Equal(t, "2", identityID)
	assert.Equal(t, "logistics", role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSessionID, "5", "admin", testIssuer, -time.Minute)
	require.NoError(t, err)

	sid, identityID, _, err := pkgjwt.Parse(testSecret, tok)
	require.Error(t, err, "token expirado debe retornar error")
	assert.ErrorIs(t, err, pkgjwt.ErrExpired)
	assert.Equal(t, testSessionID, sid)
	assert.Equal(t, "5", identityID)
}

func TestJWT_TokenExpiradoDeOtroSecret_NoDevuelveClaims(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", testSessionID, "5", "admin", testIssuer, -time.Minute)
	require.NoError(t, err)

	sid, _, _, err := pkgjwt.Parse(testSecret, tok)
	require.Error(t, err)
	assert.Empty(t, sid)
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSessionID, "5", "admin", testIssuer, time.Hour)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SinSessionID_NoSeGenera(t *testing.T) {
	_, err := pkgjwt.Generate(testSecret, "", "5", "admin", testIssuer, time.Hour)
	assert.Error(t, err)
}
