package catalogo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/panel-api/internal/application/catalogo"
	"github.com/smartstock/panel-api/internal/domain/entity"
)

type clientesFalso struct{}

func (clientesFalso) Listar(context.Context) ([]entity.Cliente, error) {
	return []entity.Cliente{{ID: 1, Nombre: "Acme"}}, nil
}

func (clientesFalso) Obtener(_ context.Context, id int) (*entity.Cliente, error) {
	return &entity.Cliente{ID: id}, nil
}

type productosFalso struct{ productos []entity.Producto }

func (p productosFalso) Listar(context.Context) ([]entity.Producto, error) {
	return p.productos, nil
}

type contratosFalso struct{ contratos []entity.Contrato }

func (c contratosFalso) PorCliente(context.Context, int) ([]entity.Contrato, error) {
	return c.contratos, nil
}

func TestProductosConContratoCruzaCatalogos(t *testing.T) {
	uc := catalogo.NewUseCase(
		clientesFalso{},
		productosFalso{productos: []entity.Producto{
			{ID: 1, Nombre: "Tarjeta Básica"},
			{ID: 2, Nombre: "Tarjeta Premium"},
			{ID: 3, Nombre: "Tarjeta Corporativa"},
		}},
		contratosFalso{contratos: []entity.Contrato{
			{ID: 10, ProductoID: 1, LimiteContrato: 500},
			{ID: 11, ProductoID: 3, LimiteContrato: 200},
		}},
	)

	out, err := uc.ProductosConContrato(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "Tarjeta Básica", out[0].Nombre)
	assert.Equal(t, 10, out[0].ContratoID)
	assert.Equal(t, 500, out[0].LimiteContrato)
	assert.Equal(t, "Tarjeta Corporativa", out[1].Nombre)
}

func TestProductosConContratoClienteSinContratos(t *testing.T) {
	uc := catalogo.NewUseCase(
		clientesFalso{},
		productosFalso{productos: []entity.Producto{{ID: 1}}},
		contratosFalso{},
	)

	out, err := uc.ProductosConContrato(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out, "lista vacía, no null en el JSON")
}
