package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/panel-api/internal/application/auth"
	apphttp "github.com/smartstock/panel-api/internal/interfaces/http"
)

func buildLoginApp() *fiber.App {
	app := fiber.New()
	uc := auth.NewUseCase(testJWTSecret, testIssuer, testExpMin)
	h := apphttp.NewAuthHandler(uc)
	app.Post("/api/auth/login", h.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestLogin_EmiteSesion(t *testing.T) {
	app := buildLoginApp()
	resp := postLogin(t, app, `{"username":"operador1","rol":"admin"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var sesion auth.Sesion
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sesion))
	assert.NotEmpty(t, sesion.Token)
	assert.Equal(t, "operador1", sesion.Username)
	assert.Equal(t, "admin", sesion.Rol)
}

func TestLogin_RolInvalido(t *testing.T) {
	app := buildLoginApp()
	resp := postLogin(t, app, `{"username":"operador1","rol":"root"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_UsernameVacio(t *testing.T) {
	app := buildLoginApp()
	resp := postLogin(t, app, `{"username":"","rol":"user"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
