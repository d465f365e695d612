package registro_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartstock/panel-api/internal/application/registro"
	"github.com/smartstock/panel-api/internal/domain/entity"
)

type apiFalsa struct {
	recibido *entity.NuevoCliente
}

func (a *apiFalsa) Crear(_ context.Context, in entity.NuevoCliente) (*entity.Cliente, error) {
	a.recibido = &in
	return &entity.Cliente{ID: 1, Nombre: in.Nombre, RFC: in.RFC}, nil
}

func solicitudValida() registro.Solicitud {
	return registro.Solicitud{
		Nombre:            "Comercial Andina",
		RFC:               "CAN900101AB1",
		ContactoEmail:     "contacto@andina.cl",
		ContactoTel:       "+56 9 1234 5678",
		Direccion:         "Av. Principal 100",
		Password:          "secreta1",
		ConfirmarPassword: "secreta1",
	}
}

func TestRegistrarClienteValido(t *testing.T) {
	api := &apiFalsa{}
	uc := registro.NewUseCase(api)

	cliente, err := uc.Registrar(context.Background(), solicitudValida())
	require.NoError(t, err)
	assert.Equal(t, 1, cliente.ID)

	require.NotNil(t, api.recibido)
	// La contraseña viaja hasheada, nunca en claro.
	assert.NotEqual(t, "secreta1", api.recibido.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(api.recibido.PasswordHash), []byte("secreta1")))
}

func TestRegistrarNormalizaRFC(t *testing.T) {
	api := &apiFalsa{}
	uc := registro.NewUseCase(api)

	s := solicitudValida()
	s.RFC = "  can900101ab1  "
	_, err := uc.Registrar(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, "CAN900101AB1", api.recibido.RFC)
}

func TestValidarAcumulaTodosLosErrores(t *testing.T) {
	errs := registro.Validar(registro.Solicitud{
		Nombre:            "ab",
		RFC:               "XX",
		ContactoEmail:     "no-es-email",
		ContactoTel:       "12345",
		Password:          "123",
		ConfirmarPassword: "456",
	})

	// Un problema por campo, todos reportados juntos.
	require.NotNil(t, errs)
	assert.Len(t, errs.Errores, 6)
}

func TestValidarRFCDe13NoEsDeEmpresa(t *testing.T) {
	s := solicitudValida()
	s.RFC = "XAXX010101000" // persona física, 13 caracteres

	errs := registro.Validar(s)
	require.NotNil(t, errs)
	assert.Len(t, errs.Errores, 1)
}

func TestValidarTelefonoConSeparadores(t *testing.T) {
	s := solicitudValida()
	s.ContactoTel = "(55) 1234-5678"

	assert.Nil(t, registro.Validar(s), "los separadores no cuentan pero los 10 dígitos sí")
}

func TestValidarPasswordsDistintas(t *testing.T) {
	s := solicitudValida()
	s.ConfirmarPassword = "otra-cosa"

	errs := registro.Validar(s)
	require.NotNil(t, errs)
	assert.Len(t, errs.Errores, 1)
}

func TestRegistrarNoLlamaBackendConFormularioInvalido(t *testing.T) {
	api := &apiFalsa{}
	uc := registro.NewUseCase(api)

	s := solicitudValida()
	s.Nombre = "ab"
	_, err := uc.Registrar(context.Background(), s)

	var errs *registro.ErroresValidacion
	require.ErrorAs(t, err, &errs)
	assert.Nil(t, api.recibido)
}
