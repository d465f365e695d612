package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/smartstock/panel-api/pkg/jwt"
)

const testSecret = "secreto-de-pruebas-unitarias"

func TestGenerateYParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "maria", "admin", "smartstock-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	username, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "maria", username)
	assert.Equal(t, "admin", role)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "maria", "admin", "smartstock-test", 60)
	assert.Error(t, err)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "maria", "user", "smartstock-test", 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "maria", "user", "smartstock-test", -5)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}
