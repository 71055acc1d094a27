package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Herramientas-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// Caso 1: Generar y parsear devuelve los mismos claims.
func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "u1", "c1", "r1", true, "herramientas-test", 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "c1", claims.CompanyID)
	assert.Equal(t, "r1", claims.RoleID)
	assert.True(t, claims.IsBoss)
	assert.Equal(t, "u1", claims.Subject)
}

// Caso 2: Un secret distinto invalida el token.
func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "u1", "c1", "", false, "herramientas-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "un token firmado con otro secret debe rechazarse")
}

// Caso 3: Un token ya expirado se rechaza al parsear.
func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "u1", "c1", "", false, "herramientas-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

// Caso 4: Sin secret no se genera nada.
func TestGenerate_SinSecret(t *testing.T) {
	_, err := pkgjwt.Generate("", "u1", "c1", "", false, "x", 60)
	assert.Error(t, err)
}
