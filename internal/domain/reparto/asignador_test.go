package reparto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/panel-api/internal/domain/entity"
	"github.com/smartstock/panel-api/internal/domain/reparto"
)

func poolDe(ids ...int) []entity.Repartidor {
	pool := make([]entity.Repartidor, 0, len(ids))
	for _, id := range ids {
		pool = append(pool, entity.Repartidor{ID: id, Disponible: true})
	}
	return pool
}

func TestAsignar_RecorreEnOrdenYEnvuelve(t *testing.T) {
	pool := poolDe(10, 20, 30)

	// Recorre el pool en orden y envuelve en el límite del tamaño.
	esperados := []int{10, 20, 30, 10, 20, 30, 10}
	for i, want := range esperados {
		rep, ok := reparto.Asignar(pool, i)
		require.True(t, ok)
		assert.Equal(t, want, rep.ID, "asignación %d", i)
	}
}

func TestAsignar_PoolDeUno(t *testing.T) {
	pool := poolDe(5)
	for i := 0; i < 4; i++ {
		rep, ok := reparto.Asignar(pool, i)
		require.True(t, ok)
		assert.Equal(t, 5, rep.ID)
	}
}

func TestAsignar_PoolVacio(t *testing.T) {
	_, ok := reparto.Asignar(nil, 0)
	assert.False(t, ok)

	_, ok = reparto.Asignar([]entity.Repartidor{}, 3)
	assert.False(t, ok)
}
